package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrUnavailable means no writer could place the text on the clipboard
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on the system clipboard
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(ctx context.Context, text string) error

// WriteText calls f
func (f WriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// Fallback tries Primary first and Secondary when Primary fails
type Fallback struct {
	Primary   Writer
	Secondary Writer
}

// NewFallback creates a writer preferring native over legacy. Either may be nil.
func NewFallback(native, legacy Writer) *Fallback {
	return &Fallback{Primary: native, Secondary: legacy}
}

// WriteText writes with the first writer that succeeds. The returned error
// wraps ErrUnavailable and every underlying failure.
func (f *Fallback) WriteText(ctx context.Context, text string) error {
	errs := []error{ErrUnavailable}

	for _, w := range []Writer{f.Primary, f.Secondary} {
		if w == nil {
			continue
		}
		err := w.WriteText(ctx, text)
		if err == nil {
			return nil
		}
		log.Printf("Clipboard writer %T failed: %v", w, err)
		errs = append(errs, err)
	}

	return fmt.Errorf("copy failed: %w", errors.Join(errs...))
}
