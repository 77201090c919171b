// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"
)

type pathKind int8

const (
	pathRoot pathKind = iota
	pathSeq
	pathMap
	pathAlias
	pathUnknown
)

// path is the structural location of the value being read, like
// "dependencies.serde[0]". It is an immutable linked list: each recursion
// frame extends its parent's path and discards the extension on return.
// Used only for error messages.
type path struct {
	parent *path
	kind   pathKind
	key    string
	index  int
}

var rootPath = &path{kind: pathRoot}

func (p *path) seq(index int) *path {
	return &path{parent: p, kind: pathSeq, index: index}
}

func (p *path) field(key string) *path {
	return &path{parent: p, kind: pathMap, key: key}
}

func (p *path) alias() *path {
	return &path{parent: p, kind: pathAlias}
}

func (p *path) unknown() *path {
	return &path{parent: p, kind: pathUnknown}
}

func (p *path) String() string {
	if p.kind == pathRoot {
		return "."
	}
	var b strings.Builder
	p.render(&b)
	return b.String()
}

func (p *path) render(b *strings.Builder) {
	switch p.kind {
	case pathRoot:
		b.WriteByte('.')
	case pathSeq:
		// An index suffixes its parent directly: a[0], not a.[0].
		p.parent.renderParent(b, false)
		fmt.Fprintf(b, "[%d]", p.index)
	case pathMap:
		p.parent.renderParent(b, true)
		b.WriteString(p.key)
	case pathAlias:
		p.parent.render(b)
	case pathUnknown:
		p.parent.renderParent(b, true)
		b.WriteByte('?')
	}
}

// renderParent writes the parent prefix, joined with a dot when the child
// asks for one. The root contributes nothing, and an alias hop is
// transparent: it defers to its own parent.
func (p *path) renderParent(b *strings.Builder, dot bool) {
	switch p.kind {
	case pathRoot:
		return
	case pathAlias:
		p.parent.renderParent(b, dot)
	default:
		p.render(b)
		if dot {
			b.WriteByte('.')
		}
	}
}
