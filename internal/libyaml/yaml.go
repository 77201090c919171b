// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package libyaml adapts the gopkg.in/yaml.v3 parser into the flat event
// stream consumed by the loader. The YAML grammar itself lives entirely in
// yaml.v3; this package only flattens composed node trees into positional
// events and normalizes tags, styles and marks.
package libyaml

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EventType is the type of a parser event.
type EventType int8

const (
	// NO_EVENT is an empty event.
	NO_EVENT EventType = iota

	// STREAM_START_EVENT is a STREAM-START event.
	STREAM_START_EVENT
	// STREAM_END_EVENT is a STREAM-END event.
	STREAM_END_EVENT

	// DOCUMENT_START_EVENT is a DOCUMENT-START event.
	DOCUMENT_START_EVENT
	// DOCUMENT_END_EVENT is a DOCUMENT-END event.
	DOCUMENT_END_EVENT

	// ALIAS_EVENT is an ALIAS event.
	ALIAS_EVENT
	// SCALAR_EVENT is a SCALAR event.
	SCALAR_EVENT

	// SEQUENCE_START_EVENT is a SEQUENCE-START event.
	SEQUENCE_START_EVENT
	// SEQUENCE_END_EVENT is a SEQUENCE-END event.
	SEQUENCE_END_EVENT

	// MAPPING_START_EVENT is a MAPPING-START event.
	MAPPING_START_EVENT
	// MAPPING_END_EVENT is a MAPPING-END event.
	MAPPING_END_EVENT
)

var eventTypeStrings = []string{
	NO_EVENT:             "none",
	STREAM_START_EVENT:   "stream start",
	STREAM_END_EVENT:     "stream end",
	DOCUMENT_START_EVENT: "document start",
	DOCUMENT_END_EVENT:   "document end",
	ALIAS_EVENT:          "alias",
	SCALAR_EVENT:         "scalar",
	SEQUENCE_START_EVENT: "sequence start",
	SEQUENCE_END_EVENT:   "sequence end",
	MAPPING_START_EVENT:  "mapping start",
	MAPPING_END_EVENT:    "mapping end",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeStrings) {
		return "unknown event"
	}
	return eventTypeStrings[t]
}

// ScalarStyle is the presentation style of a scalar event.
type ScalarStyle int8

const (
	// ANY_SCALAR_STYLE means the style is unspecified.
	ANY_SCALAR_STYLE ScalarStyle = iota
	// PLAIN_SCALAR_STYLE is an unquoted scalar.
	PLAIN_SCALAR_STYLE
	// SINGLE_QUOTED_SCALAR_STYLE is a single-quoted scalar.
	SINGLE_QUOTED_SCALAR_STYLE
	// DOUBLE_QUOTED_SCALAR_STYLE is a double-quoted scalar.
	DOUBLE_QUOTED_SCALAR_STYLE
	// LITERAL_SCALAR_STYLE is a literal block scalar.
	LITERAL_SCALAR_STYLE
	// FOLDED_SCALAR_STYLE is a folded block scalar.
	FOLDED_SCALAR_STYLE
)

// Core schema tags in their long form.
const (
	NULL_TAG  = "tag:yaml.org,2002:null"
	BOOL_TAG  = "tag:yaml.org,2002:bool"
	STR_TAG   = "tag:yaml.org,2002:str"
	INT_TAG   = "tag:yaml.org,2002:int"
	FLOAT_TAG = "tag:yaml.org,2002:float"
	SEQ_TAG   = "tag:yaml.org,2002:seq"
	MAP_TAG   = "tag:yaml.org,2002:map"

	BINARY_TAG    = "tag:yaml.org,2002:binary"
	MERGE_TAG     = "tag:yaml.org,2002:merge"
	TIMESTAMP_TAG = "tag:yaml.org,2002:timestamp"

	longTagPrefix = "tag:yaml.org,2002:"
)

// Mark is a position in the input. Line and Column are 0-indexed; error
// messages add 1 to both.
type Mark struct {
	Index  int
	Line   int
	Column int
}

func (m Mark) String() string {
	return fmt.Sprintf("line %d column %d", m.Line+1, m.Column+1)
}

// Event is one positional event of a flattened document.
//
// For node events, Anchor is the anchor name defined on the node, if any.
// For ALIAS_EVENT, Anchor is the name of the anchor being referenced.
// Tag is set only when the input carried an explicit tag, normalized to
// long form for the core schema shorthands.
type Event struct {
	Type   EventType
	Anchor string
	Tag    string
	Value  string
	Style  ScalarStyle
}

// Node is the composed document node used on the emission side.
type Node = yaml.Node

// Node kinds and styles, re-exported so that callers build emission trees
// without importing yaml.v3 themselves.
const (
	DocumentNode = yaml.DocumentNode
	SequenceNode = yaml.SequenceNode
	MappingNode  = yaml.MappingNode
	ScalarNode   = yaml.ScalarNode
	AliasNode    = yaml.AliasNode

	TaggedStyle       = yaml.TaggedStyle
	SingleQuotedStyle = yaml.SingleQuotedStyle
	DoubleQuotedStyle = yaml.DoubleQuotedStyle
	LiteralStyle      = yaml.LiteralStyle
	FoldedStyle       = yaml.FoldedStyle
	FlowStyle         = yaml.FlowStyle
)

// Emit serializes a composed node tree to YAML text.
func Emit(node *Node) ([]byte, error) {
	return yaml.Marshal(node)
}
