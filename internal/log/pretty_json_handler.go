package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
)

type PrettyJSONHandlerOptions struct {
	slog.HandlerOptions
	PrettyPrint bool
}

// NewPrettyJSONHandler returns a [slog.Handler] writing JSON log lines, optionally indented for
// local development.
func NewPrettyJSONHandler(w io.Writer, opts *PrettyJSONHandlerOptions) slog.Handler {
	if opts == nil {
		opts = &PrettyJSONHandlerOptions{}
	}

	return &prettyJSONHandler{
		JSONHandler:    slog.NewJSONHandler(w, &opts.HandlerOptions),
		writer:         w,
		prettyPrint:    opts.PrettyPrint,
		handlerOptions: &opts.HandlerOptions,
	}
}

type prettyJSONHandler struct {
	*slog.JSONHandler
	writer         io.Writer
	prettyPrint    bool
	handlerOptions *slog.HandlerOptions
}

func (h prettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.prettyPrint {
		return h.JSONHandler.Handle(ctx, r)
	}

	compact := &bytes.Buffer{}
	if err := slog.NewJSONHandler(compact, h.handlerOptions).Handle(ctx, r); err != nil {
		return err
	}

	indented := &bytes.Buffer{}
	if err := json.Indent(indented, bytes.TrimRight(compact.Bytes(), "\n"), "", "  "); err != nil {
		// fall back to the compact line rather than dropping the record
		_, err = h.writer.Write(compact.Bytes())
		return err
	}
	indented.WriteByte('\n')

	_, err := h.writer.Write(indented.Bytes())

	return err
}
