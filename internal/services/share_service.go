package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"
)

// TextSink delivers quotation text somewhere outside the engine.
type TextSink interface {
	Deliver(ctx context.Context, text string) error
}

// TextSinkFunc adapts a function to TextSink.
type TextSinkFunc func(ctx context.Context, text string) error

func (f TextSinkFunc) Deliver(ctx context.Context, text string) error { return f(ctx, text) }

// FileSink writes the text to Path, replacing any previous content.
type FileSink struct {
	Path string
}

func (s FileSink) Deliver(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Path == "" {
		return fmt.Errorf("file sink: empty path")
	}
	return os.WriteFile(s.Path, []byte(text), 0o644)
}

// WriterSink writes the text to W.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Deliver(_ context.Context, text string) error {
	if s.W == nil {
		return fmt.Errorf("writer sink: nil writer")
	}
	_, err := io.WriteString(s.W, text)
	return err
}

// ShareResult reports how the text went out. Notice is only set when every path failed.
type ShareResult struct {
	Delivered bool   `json:"delivered"`
	Via       string `json:"via,omitempty"`
	Notice    string `json:"notice,omitempty"`
}

// Sharer tries Primary, then Fallback. Failures never reach the caller as errors or
// panics.
type Sharer struct {
	Primary   TextSink
	Fallback  TextSink
	RequestID string
}

func (s Sharer) Share(ctx context.Context, text string) ShareResult {
	err := deliverSafely(ctx, s.Primary, text)
	if err == nil {
		return ShareResult{Delivered: true, Via: "primary"}
	}
	utils.LogEventf(s.RequestID, "share", "primary_failed", "%v", err)

	err = deliverSafely(ctx, s.Fallback, text)
	if err == nil {
		return ShareResult{Delivered: true, Via: "fallback"}
	}
	utils.LogEventf(s.RequestID, "share", "fallback_failed", "%v", err)

	return ShareResult{Notice: "Could not copy the quotation automatically. Please copy it manually."}
}

func deliverSafely(ctx context.Context, sink TextSink, text string) (err error) {
	if sink == nil {
		return fmt.Errorf("no sink configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panic: %v", r)
		}
	}()
	return sink.Deliver(ctx, text)
}
