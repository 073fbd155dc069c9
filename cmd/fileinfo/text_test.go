package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lesiw.io/file"
)

func TestLossyString(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		expected string
	}{
		{"valid", []byte("rust!"), "rust!"},
		{"empty", nil, ""},
		{"multibyte", []byte("héllo, 世界"), "héllo, 世界"},
		{"replacement char", []byte("�"), "�"},
		{"trailing", []byte{'o', 'k', 0xff}, "ok�"},
		{"run of invalid bytes", []byte{0xff, 0xff}, "��"},
		{"truncated sequence", []byte("\xe2\x82A"), "�A"},
		{"truncated at end", []byte("\xf0\x9f\x98"), "�"},
		{"surrogate", []byte("\xed\xa0\x80"), "���"},
		{"overlong", []byte("\xc0\xaf"), "��"},
		{"stray continuation", []byte("a\x80b"), "a�b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lossyString(tt.in))
		})
	}
}

func TestRunInvalidRun(t *testing.T) {
	var out bytes.Buffer
	f := file.NewWithData("bad.bin", []byte{0xff, 0xff})

	err := run(t.Context(), &out, config{Faults: file.Never}, f)
	require.NoError(t, err)

	assert.Contains(t, out.String(),
		"bad.bin is 2 bytes long\n��\n")
}
