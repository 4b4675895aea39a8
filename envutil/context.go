package envutil

import "context"

type contextKey string

// WithEnvOverride returns a context in which the given key reads as value,
// regardless of the process environment. Tests use it to exercise config
// paths in parallel without touching os.Setenv.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey(key), value)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(contextKey(key)).(string)

	return val, ok
}
