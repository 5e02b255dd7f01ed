package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer

	s, err := GetSimpleText(bufio.NewReader(strings.NewReader("  bench \n")), "Word", &out)
	require.NoError(t, err)
	assert.Equal(t, "bench", s)
	assert.Equal(t, "Word\n> ", out.String())

	s, err = GetSimpleText(bufio.NewReader(strings.NewReader("partial")), "Word", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", s)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Word", &out)
	assert.Error(t, err)
}

func TestGetWithDefault(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n-\nnew\n"))

	s, err := GetWithDefault(r, "Language", "English", &out)
	require.NoError(t, err)
	assert.Equal(t, "English", s)
	assert.Contains(t, out.String(), "Language [English]")

	s, err = GetWithDefault(r, "Language", "English", &out)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = GetWithDefault(r, "Language", "", &out)
	require.NoError(t, err)
	assert.Equal(t, "new", s)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("line one\n<b>two</b>\n\nafter\n"))

	s, err := GetMultiline(r, "Meaning", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\n<b>two</b>", s)

	rest, _ := r.ReadString('\n')
	assert.Equal(t, "after\n", rest)
}

func TestGetMultiline_EOF(t *testing.T) {
	var out bytes.Buffer
	s, err := GetMultiline(bufio.NewReader(strings.NewReader("only")), "Meaning", &out)
	require.NoError(t, err)
	assert.Equal(t, "only", s)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("y\nYES\nn\n\n"))

	assert.True(t, Confirm(r, "Delete?", &out))
	assert.True(t, Confirm(r, "Delete?", &out))
	assert.False(t, Confirm(r, "Delete?", &out))
	assert.False(t, Confirm(r, "Delete?", &out))
	assert.False(t, Confirm(r, "Delete?", &out))
}
