package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, lines int) []byte {
	t.Helper()
	var buf bytes.Buffer
	doc := New(&buf)
	doc.SetFontSize(26)
	require.NoError(t, doc.TextUnderlined("Invoice"))
	doc.SetFontSize(14)
	for i := range lines {
		require.NoError(t, doc.Text(fmt.Sprintf("Item %d: 1 x $1.00", i)))
	}
	require.NoError(t, doc.Close())
	return buf.Bytes()
}

func TestDocument_Structure(t *testing.T) {
	out := render(t, 3)
	s := string(out)

	assert.True(t, strings.HasPrefix(s, "%PDF-1.4\n"))
	assert.True(t, strings.HasSuffix(s, "%%EOF\n"))
	assert.Contains(t, s, "(Invoice) Tj")
	assert.Contains(t, s, "(Item 2: 1 x $1.00) Tj")
	assert.Contains(t, s, "/Count 1")
}

func TestDocument_XrefOffsets(t *testing.T) {
	out := render(t, 120)
	s := string(out)

	m := regexp.MustCompile(`startxref\n(\d+)\n`).FindStringSubmatch(s)
	require.Len(t, m, 2)
	xref, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(s[xref:], "xref\n"))

	entries := regexp.MustCompile(`(\d{10}) 00000 n \n`).FindAllStringSubmatch(s[xref:], -1)
	require.NotEmpty(t, entries)
	for i, e := range entries {
		off, err := strconv.Atoi(e[1])
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(s[off:], fmt.Sprintf("%d 0 obj\n", i+1)), "object %d offset", i+1)
	}
}

func TestDocument_StreamLength(t *testing.T) {
	out := string(render(t, 2))

	start := strings.Index(out, "stream\n") + len("stream\n")
	end := strings.Index(out, "endstream\n")
	m := regexp.MustCompile(`5 0 obj\n(\d+)\n`).FindStringSubmatch(out)
	require.Len(t, m, 2)
	assert.Equal(t, strconv.Itoa(end-start), m[1])
}

func TestDocument_PageBreak(t *testing.T) {
	out := string(render(t, 120))
	assert.Contains(t, out, "/Count 4")
}

func TestDocument_Deterministic(t *testing.T) {
	assert.Equal(t, render(t, 40), render(t, 40))
}

func TestDocument_EmptyHasOnePage(t *testing.T) {
	var buf bytes.Buffer
	doc := New(&buf)
	require.NoError(t, doc.Close())
	assert.Contains(t, buf.String(), "/Count 1")
	assert.ErrorIs(t, doc.Close(), ErrClosed)
	assert.ErrorIs(t, doc.Text("late"), ErrClosed)
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestDocument_WriteErrorIsSticky(t *testing.T) {
	doc := New(&failingWriter{after: 5})
	var err error
	for range 10 {
		if err = doc.Text("line"); err != nil {
			break
		}
	}
	require.Error(t, err)
	assert.ErrorContains(t, doc.Close(), "disk full")
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\(b\)c\\`, escape(`a(b)c\`))
	assert.Equal(t, `caf\351`, escape("café"))
	assert.Equal(t, "?", escape("日"))
}
