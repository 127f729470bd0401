// Package logfields provides canonical slog field name constants and helpers
// so log attribute keys don't drift across packages.
package logfields

import "log/slog"

const (
	KeyPath     = "path"
	KeyFile     = "file"
	KeyTarget   = "target"
	KeyFragment = "fragment"
	KeyLabel    = "label"
	KeyDest     = "destination"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func File(f string) slog.Attr     { return slog.String(KeyFile, f) }
func Target(t string) slog.Attr   { return slog.String(KeyTarget, t) }
func Fragment(f string) slog.Attr { return slog.String(KeyFragment, f) }
func Label(l string) slog.Attr    { return slog.String(KeyLabel, l) }
func Dest(d string) slog.Attr     { return slog.String(KeyDest, d) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
