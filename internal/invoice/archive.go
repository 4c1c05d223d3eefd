package invoice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileName имя файла счета, одинаковое для архива и Content-Disposition.
func FileName(orderID string) string {
	return "invoice-" + orderID + ".pdf"
}

// FileArchive хранит счета в каталоге dir по детерминированному пути.
type FileArchive struct {
	dir string
}

func NewFileArchive(dir string) (*FileArchive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create invoice dir: %w", err)
	}
	return &FileArchive{dir: dir}, nil
}

func (a *FileArchive) Path(orderID string) string {
	return filepath.Join(a.dir, FileName(orderID))
}

// Create открывает приемник для счета. Файл появляется под итоговым именем
// только после Close без ошибок записи; иначе временный файл удаляется.
func (a *FileArchive) Create(_ context.Context, orderID string) (Sink, error) {
	if orderID == "" || filepath.Base(orderID) != orderID {
		return nil, fmt.Errorf("invalid order id %q", orderID)
	}

	path := a.Path(orderID)
	f, err := os.CreateTemp(a.dir, FileName(orderID)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice file: %w", err)
	}
	return &archiveFile{f: f, path: path}, nil
}

// tempFile часть *os.File, нужная архиву.
type tempFile interface {
	io.Writer
	Sync() error
	Close() error
	Name() string
}

type archiveFile struct {
	f      tempFile
	path   string
	failed bool
}

// Write помечает файл испорченным при ошибке или неполной записи,
// такой файл не переименовывается в итоговый.
func (a *archiveFile) Write(p []byte) (int, error) {
	n, err := a.f.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		a.failed = true
	}
	return n, err
}

func (a *archiveFile) Close() error {
	tmp := a.f.Name()
	if a.failed {
		return errors.Join(a.f.Close(), os.Remove(tmp))
	}

	if err := a.f.Sync(); err != nil {
		return errors.Join(err, a.f.Close(), os.Remove(tmp))
	}
	if err := a.f.Close(); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	if err := os.Rename(tmp, a.path); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	return nil
}
