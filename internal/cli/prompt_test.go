package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected bool
	}{
		{name: "y", answer: "y", expected: true},
		{name: "uppercase Y", answer: "Y", expected: true},
		{name: "yes", answer: "yes", expected: true},
		{name: "YES", answer: "YES", expected: true},
		{name: "padded yes", answer: "  yes  ", expected: true},
		{name: "n", answer: "n", expected: false},
		{name: "empty", answer: "", expected: false},
		{name: "nope", answer: "nope", expected: false},
		{name: "yeah", answer: "yeah", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isAffirmative(tt.answer))
		})
	}
}

func TestReadLine(t *testing.T) {
	t.Run("newline terminated", func(t *testing.T) {
		line, err := readLine(strings.NewReader("hello\n"))
		require.NoError(t, err)
		assert.Equal(t, "hello", line)
	})

	t.Run("crlf terminated", func(t *testing.T) {
		line, err := readLine(strings.NewReader("hello\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "hello", line)
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		line, err := readLine(strings.NewReader("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", line)
	})

	t.Run("empty input errors", func(t *testing.T) {
		_, err := readLine(strings.NewReader(""))
		assert.Error(t, err)
	})
}
