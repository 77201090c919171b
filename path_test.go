// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	"github.com/serde-go/yaml/internal/testutil/assert"
)

func TestPathRendering(t *testing.T) {
	assert.Equal(t, ".", rootPath.String())
	assert.Equal(t, "a", rootPath.field("a").String())
	assert.Equal(t, "a.b", rootPath.field("a").field("b").String())
	assert.Equal(t, "a[0]", rootPath.field("a").seq(0).String())
	assert.Equal(t, "a[2].b", rootPath.field("a").seq(2).field("b").String())
	assert.Equal(t, "[1][3]", rootPath.seq(1).seq(3).String())
}

func TestPathAliasIsTransparent(t *testing.T) {
	assert.Equal(t, "a.b", rootPath.field("a").alias().field("b").String())
	assert.Equal(t, "a[0]", rootPath.field("a").alias().seq(0).String())
	assert.Equal(t, "a[1].b", rootPath.field("a").seq(1).alias().field("b").String())
}

func TestPathUnknownSegment(t *testing.T) {
	assert.Equal(t, "a.?", rootPath.field("a").unknown().String())
}
