// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"errors"
	"io"

	"github.com/serde-go/yaml/internal/libyaml"
)

// A Document is one buffered YAML document: the flat event list, the anchor
// table mapping anchor ids to the index of the anchored event, and the
// terminal parse error, if parsing failed partway. Immutable once returned
// by the Loader.
type Document struct {
	events  []event
	anchors []int
	err     *Error
}

// Err returns the terminal parse error captured while loading the
// document, if any. The events before the failure are still usable.
func (d *Document) Err() error {
	if d.err == nil {
		return nil
	}
	return d.err
}

// A Loader splits a YAML stream into buffered Documents, driving the
// parser to each document boundary and resolving anchor names to
// sequential ids as it goes.
type Loader struct {
	parser   *libyaml.Parser
	docCount int
}

// NewLoader returns a Loader over the stream r. The input is read to
// completion up front; a read failure surfaces here as an IO error.
func NewLoader(r io.Reader) (*Loader, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, errIO(err)
	}
	return NewLoaderBytes(input), nil
}

// NewLoaderBytes returns a Loader over in.
func NewLoaderBytes(in []byte) *Loader {
	return &Loader{parser: libyaml.NewParser(in)}
}

// NewLoaderString returns a Loader over s.
func NewLoaderString(s string) *Loader {
	return NewLoaderBytes([]byte(s))
}

// NextDocument returns the next document of the stream, or nil when the
// stream is exhausted. Parse failures never fail NextDocument itself: they
// are captured as the returned document's terminal error, with every event
// parsed before the failure still buffered.
func (l *Loader) NextDocument() *Document {
	if l.parser == nil {
		return nil
	}
	first := l.docCount == 0
	l.docCount++

	doc := &Document{}
	anchorIDs := make(map[string]int)

	record := func(name string) int {
		if name == "" {
			return 0
		}
		id := len(doc.anchors)
		anchorIDs[name] = id
		doc.anchors = append(doc.anchors, len(doc.events))
		return id
	}

	for {
		ev, mark, err := l.parser.Next()
		if err != nil {
			doc.err = loadError(err)
			return doc
		}
		switch ev.Type {
		case libyaml.STREAM_START_EVENT, libyaml.DOCUMENT_START_EVENT:
			continue
		case libyaml.STREAM_END_EVENT:
			l.parser = nil
			if !first {
				return nil
			}
			if len(doc.events) == 0 {
				doc.events = append(doc.events, event{kind: eventVoid, mark: mark})
			}
			return doc
		case libyaml.DOCUMENT_END_EVENT:
			return doc
		case libyaml.ALIAS_EVENT:
			id, ok := anchorIDs[ev.Anchor]
			if !ok {
				doc.err = sharedOf(errKindAt(KindUnknownAnchor, mark))
				return doc
			}
			doc.events = append(doc.events, event{kind: eventAlias, mark: mark, anchor: id})
		case libyaml.SCALAR_EVENT:
			record(ev.Anchor)
			doc.events = append(doc.events, event{
				kind:  eventScalar,
				mark:  mark,
				value: ev.Value,
				tag:   ev.Tag,
				style: ev.Style,
			})
		case libyaml.SEQUENCE_START_EVENT:
			record(ev.Anchor)
			doc.events = append(doc.events, event{kind: eventSequenceStart, mark: mark, tag: ev.Tag})
		case libyaml.SEQUENCE_END_EVENT:
			doc.events = append(doc.events, event{kind: eventSequenceEnd, mark: mark})
		case libyaml.MAPPING_START_EVENT:
			record(ev.Anchor)
			doc.events = append(doc.events, event{kind: eventMappingStart, mark: mark, tag: ev.Tag})
		case libyaml.MAPPING_END_EVENT:
			doc.events = append(doc.events, event{kind: eventMappingEnd, mark: mark})
		}
	}
}

func loadError(err error) *Error {
	var parserErr *libyaml.ParserError
	if errors.As(err, &parserErr) {
		if parserErr.IsUnknownAnchor() {
			e := errKind(KindUnknownAnchor)
			if parserErr.HasMark {
				e.mark = parserErr.Mark
				e.hasMark = true
			}
			return sharedOf(e)
		}
		return sharedOf(errParse(parserErr))
	}
	return sharedOf(errIO(err))
}
