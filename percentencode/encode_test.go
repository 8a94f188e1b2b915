/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package percentencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		set  EncodeSet
		want string
	}{
		{"component comma space", "hello, world", Component, "hello%2C%20world"},
		{"form encoded plus and escape", "Swift is better than C++", FormEncoded, "Swift+is+better+than+C%2B%2B"},
		{"non-ascii scalar", "✌️", Component, "%E2%9C%8C%EF%B8%8F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeString(tt.in, tt.set))
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	// Component escapes '%' (its own addition on top of UserInfo), so
	// encode-then-decode is a fixpoint.
	src := "%40 Polyester"
	encoded := EncodeString(src, Component)
	decoded := DecodeString(encoded, Component)
	require.Equal(t, src, decoded)
}

func TestDecode_MalformedPercentFallsBackToLiteral(t *testing.T) {
	assert.Equal(t, "100% done", DecodeString("100% done", Passthrough))
	assert.Equal(t, "100%", DecodeString("100%", Passthrough))
	assert.Equal(t, "100%2", DecodeString("100%2", Passthrough))
	assert.Equal(t, "100%2g", DecodeString("100%2g", Passthrough))
}

func TestDecode_ValidPercentTriplet(t *testing.T) {
	assert.Equal(t, "@", DecodeString("%40", Passthrough))
	assert.Equal(t, "@", DecodeString("%40", Component))
}

func TestFormEncoded_Substitution(t *testing.T) {
	assert.Equal(t, "a+b", EncodeString("a b", FormEncoded))
	assert.Equal(t, "a b", DecodeString("a+b", FormEncoded))
}

func TestUnsubstituteInverseOfSubstitute(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		sub, ok := FormEncoded.Substitute(byte(b))
		if !ok {
			continue
		}
		back, ok2 := FormEncoded.Unsubstitute(sub)
		require.True(t, ok2)
		assert.Equal(t, byte(b), back)
	}
}

func TestWriteBuffered_ReportsWhetherEncodingOccurred(t *testing.T) {
	var out []byte
	escaped := WriteBuffered([]byte("plain"), Component, func(c []byte) { out = append(out, c...) })
	assert.False(t, escaped)
	assert.Equal(t, "plain", string(out))

	out = nil
	escaped = WriteBuffered([]byte("a b"), Component, func(c []byte) { out = append(out, c...) })
	assert.True(t, escaped)
	assert.Equal(t, "a%20b", string(out))
}

func TestForwardAndReverseDrainAgree(t *testing.T) {
	inputs := []string{
		"",
		"hello, world",
		"Swift is better than C++",
		"✌️ repeated many times to overflow the stack buffer several times over",
	}
	for _, in := range inputs {
		var forward []byte
		WriteBuffered([]byte(in), Component, func(c []byte) { forward = append(forward, c...) })

		var chunks [][]byte
		WriteBufferedFromBack([]byte(in), Component, func(c []byte) {
			cp := make([]byte, len(c))
			copy(cp, c)
			chunks = append(chunks, cp)
		})
		var reversed []byte
		for i := len(chunks) - 1; i >= 0; i-- {
			reversed = append(reversed, chunks[i]...)
		}
		assert.Equal(t, string(forward), string(reversed), "input %q", in)
	}
}

func TestASCIISweepAgainstEncodeSets(t *testing.T) {
	sets := map[string]EncodeSet{
		"C0Control":       C0Control,
		"Fragment":        Fragment,
		"QueryNotSpecial": QueryNotSpecial,
		"QuerySpecial":    QuerySpecial,
		"Path":            Path,
		"UserInfo":        UserInfo,
		"Component":       Component,
	}
	// Each set must escape the full C0 control range regardless of what it
	// adds on top.
	for name, set := range sets {
		for b := 0; b <= 0x1F; b++ {
			assert.True(t, set.ShouldEscape(byte(b)), "%s should escape 0x%02X", name, b)
		}
		assert.True(t, set.ShouldEscape(0x7F), "%s should escape DEL", name)
	}
}
