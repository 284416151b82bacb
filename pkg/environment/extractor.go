package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor adds the normalized environment as "env" to records whose
// context carries one, so "prod" is logged as "production".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		raw := FromContext(ctx)
		if raw == "" {
			return slog.Attr{}, false
		}
		return slog.String("env", string(Parse(raw))), true
	}
}
