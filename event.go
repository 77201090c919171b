// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"github.com/serde-go/yaml/internal/libyaml"
)

type eventKind int8

const (
	// eventAlias redirects the cursor to the anchored event. anchor holds
	// the anchor id, an index into Document.anchors.
	eventAlias eventKind = iota
	eventScalar
	eventSequenceStart
	eventSequenceEnd
	eventMappingStart
	eventMappingEnd
	// eventVoid is the absence of a value; it stands in for an empty
	// stream and satisfies unit and None requests.
	eventVoid
)

var eventKindStrings = []string{
	eventAlias:         "alias",
	eventScalar:        "scalar",
	eventSequenceStart: "sequence start",
	eventSequenceEnd:   "sequence end",
	eventMappingStart:  "mapping start",
	eventMappingEnd:    "mapping end",
	eventVoid:          "void",
}

func (k eventKind) String() string {
	if k < 0 || int(k) >= len(eventKindStrings) {
		return "unknown"
	}
	return eventKindStrings[k]
}

// event is one entry of a Document's flat buffer. Anchor names are resolved
// to ids by the Loader before events are stored, so an event never carries
// a name.
type event struct {
	kind   eventKind
	mark   libyaml.Mark
	anchor int
	value  string
	tag    string
	style  libyaml.ScalarStyle
}
