// Package console prints user-facing results. Diagnostics go through the
// structured logger instead.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Separator is placed between the arguments of Write.
const Separator = " "

// Writer prints values to an io.Writer. It is safe for concurrent use; each
// call is written as a unit.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	err error
}

// New returns a Writer printing to out.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Stdout returns a Writer printing to standard output.
func Stdout() *Writer {
	return New(os.Stdout)
}

// Write prints args on the current line separated by Separator, without a
// trailing newline.
func (w *Writer) Write(args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, a := range args {
		if i > 0 {
			w.print(Separator)
		}
		w.print(a)
	}
}

// WriteLine prints each argument on its own line.
func (w *Writer) WriteLine(args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, a := range args {
		w.print(a, "\n")
	}
}

// Err returns the first error returned by the underlying writer, if any.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Writer) print(a ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprint(w.out, a...)
}
