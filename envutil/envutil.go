// Package envutil reads typed configuration values from the environment.
package envutil

import (
	"context"
	"os"
	"strconv"
	"strings"
)

// get returns a Reader for the given key, preferring a context override.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{
			key:     key,
			present: true,
			value:   val,
		}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Int returns a Reader that parses the variable as a base-10 int.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	rdr := Map(get(ctx, key), func(raw string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(raw))
	})

	return apply(rdr, opts)
}

// Uint64 returns a Reader that parses the variable as an unsigned integer.
// Hex (0x...) and octal prefixes are accepted.
func Uint64(ctx context.Context, key string, opts ...Option[uint64]) Reader[uint64] {
	rdr := Map(get(ctx, key), func(raw string) (uint64, error) {
		return strconv.ParseUint(strings.TrimSpace(raw), 0, 64)
	})

	return apply(rdr, opts)
}
