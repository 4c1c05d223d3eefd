package invoice

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortFile пишет на байт меньше запрошенного и не сообщает об ошибке.
type shortFile struct {
	*os.File
}

func (f shortFile) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return f.File.Write(p[:len(p)-1])
}

func TestArchiveFile_ShortWrite(t *testing.T) {
	dir := t.TempDir()
	tmp, err := os.CreateTemp(dir, "invoice-o1.pdf.*.tmp")
	require.NoError(t, err)

	path := filepath.Join(dir, FileName("o1"))
	sink := &archiveFile{f: shortFile{tmp}, path: path}

	n, err := sink.Write([]byte("%PDF-1.4"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, 7, n)

	require.NoError(t, sink.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "truncated invoice must not be renamed into place")
	_, err = os.Stat(tmp.Name())
	assert.True(t, os.IsNotExist(err), "temp file must be removed")
}
