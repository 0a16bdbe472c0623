// Package slogx holds shared slog attribute helpers.
package slogx

import "log/slog"

// Error returns a slog.Attr with key "error" and the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}
