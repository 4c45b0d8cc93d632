// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52_WritesEscapeSequence(t *testing.T) {
	var buf bytes.Buffer
	sink := NewOSC52(&buf)

	require.NoError(t, sink.WriteAll("SGVsbG8"))
	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("SGVsbG8")))
}

func TestThrottled_RejectsBurst(t *testing.T) {
	var got []string
	inner := SinkFunc(func(text string) error {
		got = append(got, text)
		return nil
	})
	sink := NewThrottled(inner, 2)

	require.NoError(t, sink.WriteAll("a"))
	require.NoError(t, sink.WriteAll("b"))
	err := sink.WriteAll("c")
	assert.ErrorIs(t, err, ErrThrottled)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestThrottled_PassesThroughErrors(t *testing.T) {
	boom := errors.New("denied")
	sink := NewThrottled(SinkFunc(func(string) error { return boom }), 5)
	assert.ErrorIs(t, sink.WriteAll("x"), boom)
}

func TestNew_Backends(t *testing.T) {
	var buf bytes.Buffer

	s, err := New(BackendSystem, 0, &buf)
	require.NoError(t, err)
	assert.IsType(t, System{}, s)

	s, err = New("OSC52", 0, &buf)
	require.NoError(t, err)
	assert.IsType(t, &OSC52{}, s)

	s, err = New(BackendAuto, 0, &buf)
	require.NoError(t, err)
	assert.NotNil(t, s)

	s, err = New(BackendOSC52, 3, &buf)
	require.NoError(t, err)
	assert.IsType(t, &Throttled{}, s)

	_, err = New("carrier-pigeon", 0, &buf)
	assert.Error(t, err)
}
