// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"fmt"
	"strings"
)

// ParserError is a terminal parsing failure with an optional input mark.
type ParserError struct {
	Problem string
	Mark    Mark
	HasMark bool
}

func (e *ParserError) Error() string {
	if e.HasMark {
		return fmt.Sprintf("%s at %s", e.Problem, e.Mark)
	}
	return e.Problem
}

// IsUnknownAnchor reports whether the failure was an alias referencing an
// anchor that was never defined.
func (e *ParserError) IsUnknownAnchor() bool {
	return strings.Contains(e.Problem, "unknown anchor")
}
