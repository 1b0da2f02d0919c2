package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetMultiline_EOFWithoutBlankLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("only line"), "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "only line", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(rdr("25\n"), "Reward", 10, &out)
	require.NoError(t, err)
	require.Equal(t, 25, got)

	got, err = GetInt(rdr("\n"), "Reward", 10, &out)
	require.NoError(t, err)
	require.Equal(t, 10, got, "empty input falls back to the default")

	_, err = GetInt(rdr("lots\n"), "Reward", 10, &out)
	require.Error(t, err)
}

func TestGetQuestID(t *testing.T) {
	var out bytes.Buffer

	got, err := GetQuestID(rdr("7\n"), &out)
	require.NoError(t, err)
	require.Equal(t, int64(7), got)

	_, err = GetQuestID(rdr("seven\n"), &out)
	require.Error(t, err)
}
