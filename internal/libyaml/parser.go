// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser is a pull-based event source over a YAML input.
//
// Each call to Next returns the next event together with its input mark.
// The stream is framed by STREAM_START_EVENT and STREAM_END_EVENT, and each
// document by DOCUMENT_START_EVENT and DOCUMENT_END_EVENT. Node trees are
// flattened depth-first into SCALAR, SEQUENCE and MAPPING events, with alias
// nodes turned into positional ALIAS events that carry the anchor name.
type Parser struct {
	dec     *yaml.Decoder
	queue   []queuedEvent
	started bool
	done    bool
}

type queuedEvent struct {
	event Event
	mark  Mark
}

// NewParser returns a Parser reading from input.
func NewParser(input []byte) *Parser {
	return &Parser{dec: yaml.NewDecoder(bytes.NewReader(input))}
}

// Next returns the next event in the stream. A returned error is terminal:
// the Parser yields no further events after one.
func (p *Parser) Next() (Event, Mark, error) {
	if len(p.queue) > 0 {
		q := p.queue[0]
		p.queue = p.queue[1:]
		return q.event, q.mark, nil
	}
	if !p.started {
		p.started = true
		return Event{Type: STREAM_START_EVENT}, Mark{}, nil
	}
	if p.done {
		return Event{Type: STREAM_END_EVENT}, Mark{}, nil
	}

	var node yaml.Node
	if err := p.dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			p.done = true
			return Event{Type: STREAM_END_EVENT}, Mark{}, nil
		}
		p.done = true
		return Event{}, Mark{}, convertError(err)
	}

	p.push(Event{Type: DOCUMENT_START_EVENT}, markOf(&node))
	p.flatten(&node)
	p.push(Event{Type: DOCUMENT_END_EVENT}, Mark{})

	q := p.queue[0]
	p.queue = p.queue[1:]
	return q.event, q.mark, nil
}

func (p *Parser) push(event Event, mark Mark) {
	p.queue = append(p.queue, queuedEvent{event, mark})
}

func (p *Parser) flatten(node *yaml.Node) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			// An empty document composes to an implicit null.
			p.push(Event{Type: SCALAR_EVENT, Style: PLAIN_SCALAR_STYLE}, markOf(node))
			return
		}
		for _, child := range node.Content {
			p.flatten(child)
		}
	case yaml.ScalarNode:
		p.push(Event{
			Type:   SCALAR_EVENT,
			Anchor: node.Anchor,
			Tag:    eventTag(node),
			Value:  node.Value,
			Style:  scalarStyleOf(node),
		}, markOf(node))
	case yaml.SequenceNode:
		p.push(Event{Type: SEQUENCE_START_EVENT, Anchor: node.Anchor, Tag: eventTag(node)}, markOf(node))
		for _, child := range node.Content {
			p.flatten(child)
		}
		p.push(Event{Type: SEQUENCE_END_EVENT}, markOf(node))
	case yaml.MappingNode:
		p.push(Event{Type: MAPPING_START_EVENT, Anchor: node.Anchor, Tag: eventTag(node)}, markOf(node))
		for _, child := range node.Content {
			p.flatten(child)
		}
		p.push(Event{Type: MAPPING_END_EVENT}, markOf(node))
	case yaml.AliasNode:
		// The alias is kept positional; Value holds the anchor name.
		p.push(Event{Type: ALIAS_EVENT, Anchor: node.Value}, markOf(node))
	}
}

// eventTag returns the explicit tag of a node, normalized to long form for
// core schema shorthands. Implicitly resolved tags are not reported.
func eventTag(node *yaml.Node) string {
	if node.Style&yaml.TaggedStyle == 0 {
		return ""
	}
	if rest, ok := strings.CutPrefix(node.Tag, "!!"); ok {
		return longTagPrefix + rest
	}
	return node.Tag
}

func scalarStyleOf(node *yaml.Node) ScalarStyle {
	switch {
	case node.Style&yaml.SingleQuotedStyle != 0:
		return SINGLE_QUOTED_SCALAR_STYLE
	case node.Style&yaml.DoubleQuotedStyle != 0:
		return DOUBLE_QUOTED_SCALAR_STYLE
	case node.Style&yaml.LiteralStyle != 0:
		return LITERAL_SCALAR_STYLE
	case node.Style&yaml.FoldedStyle != 0:
		return FOLDED_SCALAR_STYLE
	}
	return PLAIN_SCALAR_STYLE
}

func markOf(node *yaml.Node) Mark {
	mark := Mark{Line: node.Line - 1, Column: node.Column - 1}
	if mark.Line < 0 {
		mark.Line = 0
	}
	if mark.Column < 0 {
		mark.Column = 0
	}
	return mark
}

func convertError(err error) error {
	problem := strings.TrimPrefix(err.Error(), "yaml: ")
	parserErr := &ParserError{Problem: problem}
	rest, ok := strings.CutPrefix(problem, "line ")
	if !ok {
		return parserErr
	}
	lineStr, msg, ok := strings.Cut(rest, ": ")
	if !ok {
		return parserErr
	}
	line, atoiErr := strconv.Atoi(lineStr)
	if atoiErr != nil {
		return parserErr
	}
	parserErr.Problem = msg
	parserErr.Mark = Mark{Line: line - 1}
	parserErr.HasMark = true
	return parserErr
}
