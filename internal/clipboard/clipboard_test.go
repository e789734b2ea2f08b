package clipboard

import (
	"context"
	"errors"
	"testing"
)

type recordingWriter struct {
	name  string
	err   error
	texts []string
	order *[]string
}

func (w *recordingWriter) WriteText(ctx context.Context, text string) error {
	w.texts = append(w.texts, text)
	if w.order != nil {
		*w.order = append(*w.order, w.name)
	}
	return w.err
}

func TestFallback_PrimarySucceeds(t *testing.T) {
	var order []string
	native := &recordingWriter{name: "native", order: &order}
	legacy := &recordingWriter{name: "legacy", order: &order}

	if err := NewFallback(native, legacy).WriteText(context.Background(), "link"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	if len(order) != 1 || order[0] != "native" {
		t.Errorf("Expected only native to run, got %v", order)
	}
}

func TestFallback_SecondaryAfterFailure(t *testing.T) {
	var order []string
	native := &recordingWriter{name: "native", err: errors.New("denied"), order: &order}
	legacy := &recordingWriter{name: "legacy", order: &order}

	if err := NewFallback(native, legacy).WriteText(context.Background(), "link"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	if len(order) != 2 || order[1] != "legacy" {
		t.Errorf("Expected native then legacy, got %v", order)
	}
	if legacy.texts[0] != "link" {
		t.Errorf("Legacy writer got %q", legacy.texts[0])
	}
}

func TestFallback_BothFail(t *testing.T) {
	nativeErr := errors.New("denied")
	legacyErr := errors.New("no xclip")

	err := NewFallback(
		&recordingWriter{err: nativeErr},
		&recordingWriter{err: legacyErr},
	).WriteText(context.Background(), "link")

	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if !errors.Is(err, nativeErr) || !errors.Is(err, legacyErr) {
		t.Errorf("Expected both causes to be wrapped, got %v", err)
	}
}

func TestFallback_NilWriters(t *testing.T) {
	if err := NewFallback(nil, nil).WriteText(context.Background(), "link"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}

	called := false
	only := WriterFunc(func(ctx context.Context, text string) error {
		called = true
		return nil
	})
	if err := NewFallback(nil, only).WriteText(context.Background(), "link"); err != nil || !called {
		t.Errorf("Expected secondary to handle the write, err=%v called=%v", err, called)
	}
}
