package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	got, err := GetSimpleText(rdr("lastline"), "Name?", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &bytes.Buffer{})
	require.Error(t, err)
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextDefault(rdr("\n"), "Department", "Math", &out)
	require.NoError(t, err)
	assert.Equal(t, "Math", got)
	assert.Contains(t, out.String(), "Department [Math]")

	got, err = GetTextDefault(rdr("Physics\n"), "Department", "Math", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "Physics", got)
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", true, true},
		{"\n", false, false},
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"maybe\n", true, false},
	}
	for _, tt := range tests {
		got, err := GetYesNo(rdr(tt.input), "Sure?", tt.def, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q def %v", tt.input, tt.def)
	}
}

func stubTerminal(t *testing.T, isTTY bool) {
	t.Helper()
	old := stdinIsTerminal
	stdinIsTerminal = func() bool { return isTTY }
	t.Cleanup(func() { stdinIsTerminal = old })
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false)

	got, err := GetPassword(rdr("s3cret\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true)
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }
	got, err := GetPassword(rdr(""), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "hidden", got)

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(rdr(""), &bytes.Buffer{})
	require.Error(t, err)
}
