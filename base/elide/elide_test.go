// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elide_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/base/elide"
)

func TestEndLeavesShortStringsUntouched(t *testing.T) {
	assert.Equal(t, "short", elide.End("short", 10))
}

func TestEndTruncatesLongStrings(t *testing.T) {
	e := elide.End("string for testing purposes", 7)
	assert.True(t, utf8.RuneCountInString(e) <= 7)
	assert.Contains(t, e, "…")
}

func TestMiddleTruncatesLongStrings(t *testing.T) {
	m := elide.Middle("string for testing purposes", 7)
	assert.True(t, utf8.RuneCountInString(m) <= 7)
	assert.Contains(t, m, "…")
}

func TestEndDoesNotSplitAMultiByteRune(t *testing.T) {
	// Every rune here is multi-byte; a byte-oriented truncation would cut
	// one in half and produce invalid UTF-8.
	e := elide.End("日本語のテキストです", 5)
	assert.True(t, utf8.ValidString(e))
	assert.Equal(t, 5, utf8.RuneCountInString(e))
}

func TestAppNameShortensMultiWordNames(t *testing.T) {
	assert.Equal(t, "My App", elide.AppName("My App"))
	assert.Equal(t, "Really Editor", elide.AppName("Really Long Text Editor"))
}
