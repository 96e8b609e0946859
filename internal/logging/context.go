package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx. Without one it returns a
// disabled logger, so callers never need a nil check.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}

// WithComponent tags every subsequent log line with a component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithGroupID tags log lines with an editor group.
func WithGroupID(ctx context.Context, groupID string) context.Context {
	return withField(ctx, "group_id", groupID)
}

// WithLayout tags log lines with a stored layout name.
func WithLayout(ctx context.Context, name string) context.Context {
	return withField(ctx, "layout", name)
}
