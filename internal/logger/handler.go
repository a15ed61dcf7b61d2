package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler and drops records that do
// not pass the configured tag, package and file filters.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// sourceOf resolves the package and file of the record's call site.
func sourceOf(r slog.Record) (pkg, file string, ok bool) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.SourceKey {
			if src, isSrc := a.Value.Any().(*slog.Source); isSrc && src != nil {
				file = filepath.Base(src.File)
				pkg = filepath.Base(filepath.Dir(src.File))
				ok = file != ""
				return false
			}
		}
		return true
	})
	if !ok && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		if frame, more := frames.Next(); more {
			file = filepath.Base(frame.File)
			pkg = filepath.Base(filepath.Dir(frame.File))
			ok = true
		}
	}
	return pkg, file, ok
}

// allowed reports whether name passes a disabled/enabled set pair.
// A nil enabled set means "everything not explicitly disabled".
func allowed(name string, disabled, enabled map[string]struct{}) bool {
	if _, found := disabled[name]; found {
		return false
	}
	if enabled != nil {
		_, found := enabled[name]
		return found
	}
	return true
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if pkg, file, ok := sourceOf(r); ok {
		if pkg != "" && !allowed(strings.ToLower(pkg), h.cfg.disabledPackagesSet, h.cfg.enabledPackagesSet) {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] dropped: package %q\n", pkg)
			}
			return nil
		}
		if file != "" && !allowed(strings.ToLower(file), h.cfg.disabledFilesSet, h.cfg.enabledFilesSet) {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] dropped: file %q\n", file)
			}
			return nil
		}
	}

	var tag string
	var tagged bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			tagged = true
			return false
		}
		return true
	})

	if tagged {
		if !allowed(tag, h.cfg.disabledTagsSet, h.cfg.enabledTagsSet) {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] dropped: tag %q\n", tag)
			}
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Specific tags requested; untagged messages do not qualify.
		if debugFilter {
			fmt.Fprintln(os.Stderr, "[FILTER] dropped: untagged message")
		}
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}
