package invoice

import (
	"errors"
	"io"
)

type target struct {
	name   SinkName
	w      io.WriteCloser
	err    error
	closed bool
}

// fanout пишет каждый чанк во все живые приемники по очереди (lockstep).
// Отказавший приемник исключается, остальные продолжают получать данные.
type fanout struct {
	targets []*target
}

func newFanout(targets ...*target) *fanout {
	return &fanout{targets: targets}
}

func (f *fanout) Write(p []byte) (int, error) {
	alive := 0
	for _, t := range f.targets {
		if t.err != nil {
			continue
		}
		n, err := t.w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			t.err = err
			continue
		}
		alive++
	}
	if alive == 0 {
		return 0, f.err()
	}
	return len(p), nil
}

// Close закрывает все приемники, включая отказавшие, ровно один раз.
func (f *fanout) Close() error {
	for _, t := range f.targets {
		if t.closed || t.w == nil {
			continue
		}
		t.closed = true
		if err := t.w.Close(); err != nil && t.err == nil {
			t.err = err
		}
	}
	return f.err()
}

func (f *fanout) err() error {
	var errs []error
	for _, t := range f.targets {
		if t.err != nil {
			errs = append(errs, &RenderError{Sink: t.name, Err: t.err})
		}
	}
	return errors.Join(errs...)
}
