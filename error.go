// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"

	"github.com/serde-go/yaml/internal/libyaml"
)

// ErrorKind identifies the category of an Error.
type ErrorKind int8

const (
	// KindMessage is a free-form message, optionally carrying a resolved
	// position and path once backfilled.
	KindMessage ErrorKind = iota
	// KindParse wraps a terminal error from the underlying parser.
	KindParse
	// KindIO is a failure reading the input stream.
	KindIO
	// KindInvalidUTF8 is scalar content that is not valid UTF-8.
	KindInvalidUTF8
	// KindEndOfStream is an unexpected end of the event stream.
	KindEndOfStream
	// KindMoreThanOneDocument is a second document where one was required.
	KindMoreThanOneDocument
	// KindRecursionLimitExceeded is input nested beyond the depth ceiling.
	KindRecursionLimitExceeded
	// KindRepetitionLimitExceeded is an exhausted alias-jump budget.
	KindRepetitionLimitExceeded
	// KindBytesUnsupported is a request for raw bytes, which YAML lacks.
	KindBytesUnsupported
	// KindUnknownAnchor is an alias referencing an undefined anchor.
	KindUnknownAnchor
	// KindNestedEnum is a tagged value directly inside another tag.
	KindNestedEnum
	// KindScalarInMerge is a scalar used as a merge ("<<") source.
	KindScalarInMerge
	// KindTaggedInMerge is a tagged value used in a merge.
	KindTaggedInMerge
	// KindScalarInMergeElement is a scalar inside a merge source list.
	KindScalarInMergeElement
	// KindSequenceInMergeElement is a sequence inside a merge source list.
	KindSequenceInMergeElement
	// KindEmptyTag is an empty tag on a tagged value.
	KindEmptyTag
	// KindFailedToParseNumber is text that is not a YAML number.
	KindFailedToParseNumber
	// KindShared wraps one underlying error surfaced from several sites.
	KindShared
)

var errorKindStrings = []string{
	KindMessage:                 "Message",
	KindParse:                   "Parse",
	KindIO:                      "IO",
	KindInvalidUTF8:             "InvalidUTF8",
	KindEndOfStream:             "EndOfStream",
	KindMoreThanOneDocument:     "MoreThanOneDocument",
	KindRecursionLimitExceeded:  "RecursionLimitExceeded",
	KindRepetitionLimitExceeded: "RepetitionLimitExceeded",
	KindBytesUnsupported:        "BytesUnsupported",
	KindUnknownAnchor:           "UnknownAnchor",
	KindNestedEnum:              "NestedEnum",
	KindScalarInMerge:           "ScalarInMerge",
	KindTaggedInMerge:           "TaggedInMerge",
	KindScalarInMergeElement:    "ScalarInMergeElement",
	KindSequenceInMergeElement:  "SequenceInMergeElement",
	KindEmptyTag:                "EmptyTag",
	KindFailedToParseNumber:     "FailedToParseNumber",
	KindShared:                  "Shared",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindStrings) {
		return "Unknown"
	}
	return errorKindStrings[k]
}

// Location is the 1-based input position an error occurred at.
type Location struct {
	Index  int
	Line   int
	Column int
}

// Error is the error type of this package.
type Error struct {
	kind    ErrorKind
	msg     string
	err     error
	mark    libyaml.Mark
	hasMark bool
	path    string
}

// Kind returns the category of the error.
func (e *Error) Kind() ErrorKind {
	if e.kind == KindShared {
		if inner, ok := e.err.(*Error); ok {
			return inner.Kind()
		}
	}
	return e.kind
}

// Location returns the position the error occurred at. Not every error has
// one.
func (e *Error) Location() (Location, bool) {
	if e.kind == KindShared {
		if inner, ok := e.err.(*Error); ok {
			return inner.Location()
		}
	}
	if !e.hasMark {
		return Location{}, false
	}
	return Location{
		Index:  e.mark.Index,
		Line:   e.mark.Line + 1,
		Column: e.mark.Column + 1,
	}, true
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Error() string {
	switch e.kind {
	case KindParse:
		return e.err.Error()
	case KindShared:
		return e.err.Error()
	}
	var b strings.Builder
	b.WriteString(e.messageNoMark())
	if e.hasMark {
		if e.mark.Line != 0 || e.mark.Column != 0 {
			fmt.Fprintf(&b, " at line %d column %d", e.mark.Line+1, e.mark.Column+1)
		} else if e.mark.Index != 0 {
			fmt.Fprintf(&b, " at position %d", e.mark.Index)
		}
	}
	return b.String()
}

// GoString exposes the error kind alongside the message, for tooling and
// test failure output.
func (e *Error) GoString() string {
	if e.kind == KindShared {
		if inner, ok := e.err.(*Error); ok {
			return inner.GoString()
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "yaml.Error(%s: %q", e.kind, e.messageNoMark())
	if e.hasMark {
		fmt.Fprintf(&b, ", line: %d, column: %d", e.mark.Line+1, e.mark.Column+1)
	}
	b.WriteString(")")
	return b.String()
}

func (e *Error) messageNoMark() string {
	switch e.kind {
	case KindMessage:
		if e.path != "" && e.path != "." {
			return e.path + ": " + e.msg
		}
		return e.msg
	case KindIO, KindParse:
		return e.err.Error()
	case KindInvalidUTF8:
		return "invalid UTF-8 in YAML scalar"
	case KindEndOfStream:
		return "EOF while parsing a value"
	case KindMoreThanOneDocument:
		return "deserializing from YAML containing more than one document is not supported"
	case KindRecursionLimitExceeded:
		return "recursion limit exceeded"
	case KindRepetitionLimitExceeded:
		return "repetition limit exceeded"
	case KindBytesUnsupported:
		return "serialization and deserialization of bytes in YAML is not implemented"
	case KindUnknownAnchor:
		return "unknown anchor"
	case KindNestedEnum:
		return e.msg
	case KindScalarInMerge:
		return "expected a mapping or list of mappings for merging, but found scalar"
	case KindTaggedInMerge:
		return "unexpected tagged value in merge"
	case KindScalarInMergeElement:
		return "expected a mapping for merging, but found scalar"
	case KindSequenceInMergeElement:
		return "expected a mapping for merging, but found sequence"
	case KindEmptyTag:
		return "empty YAML tag is not allowed"
	case KindFailedToParseNumber:
		return "failed to parse YAML number"
	}
	return e.msg
}

func errMessage(format string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{kind: KindMessage, msg: format}
	}
	return &Error{kind: KindMessage, msg: fmt.Sprintf(format, args...)}
}

func errKind(kind ErrorKind) *Error {
	return &Error{kind: kind}
}

func errKindAt(kind ErrorKind, mark libyaml.Mark) *Error {
	return &Error{kind: kind, mark: mark, hasMark: true}
}

func errNestedEnum(outerName, outerTag string) *Error {
	return &Error{
		kind: KindNestedEnum,
		msg: fmt.Sprintf("deserializing nested enum in %s::%s from YAML is not supported yet",
			outerName, outerTag),
	}
}

func errParse(err *libyaml.ParserError) *Error {
	e := &Error{kind: KindParse, err: err}
	if err.HasMark {
		e.mark = err.Mark
		e.hasMark = true
	}
	return e
}

func errIO(err error) *Error {
	return &Error{kind: KindIO, err: err}
}

// sharedOf wraps an error that may surface from more than one failure site,
// so every site reports the same underlying cause.
func sharedOf(e *Error) *Error {
	if e.kind == KindShared {
		return e
	}
	return &Error{kind: KindShared, err: e}
}

// asError adapts a protocol-level error to *Error. Messages from foreign
// error types become mark-less Message errors so the dispatch frame can
// backfill their position.
func asError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return errMessage("%s", err.Error())
}

// errOrNil converts an internal *Error to a plain error without producing a
// typed nil interface.
func errOrNil(e *Error) error {
	if e == nil {
		return nil
	}
	return e
}

// fixMark backfills mark and path onto a mark-less Message error. The
// innermost dispatch frame runs first, so the most specific context wins.
func fixMark(e *Error, mark libyaml.Mark, p *path) *Error {
	if e != nil && e.kind == KindMessage && !e.hasMark {
		e.mark = mark
		e.hasMark = true
		e.path = p.String()
	}
	return e
}
