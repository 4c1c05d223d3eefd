package invoice

import (
	"errors"
	"fmt"
	"io"
)

type SinkName string

const (
	SinkFile     SinkName = "file"
	SinkResponse SinkName = "response"
)

// Sink приемник потока счета. Close финализирует запись (flush/rename).
type Sink = io.WriteCloser

// RenderError ошибка конкретного приемника. Второй приемник при этом дописывается.
type RenderError struct {
	Sink SinkName
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("invoice %s sink: %v", e.Sink, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// SinkErrors возвращает ошибки приемников из err, в том числе объединенные errors.Join.
func SinkErrors(err error) []*RenderError {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var res []*RenderError
		for _, e := range joined.Unwrap() {
			res = append(res, SinkErrors(e)...)
		}
		return res
	}
	var re *RenderError
	if errors.As(err, &re) {
		return []*RenderError{re}
	}
	return nil
}

type failedSink struct {
	err error
}

// FailedSink приемник, который не удалось открыть: любая запись возвращает err.
func FailedSink(err error) Sink {
	return failedSink{err: err}
}

func (s failedSink) Write([]byte) (int, error) { return 0, s.err }
func (s failedSink) Close() error              { return nil }

type discardSink struct{}

// Discard приемник, который принимает и отбрасывает все данные.
func Discard() Sink {
	return discardSink{}
}

func (discardSink) Write(p []byte) (int, error) { return len(p), nil }
func (discardSink) Close() error                { return nil }
