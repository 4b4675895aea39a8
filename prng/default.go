package prng

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/zeebo/xxh3"
)

// SeedEnvVar overrides DefaultSeed for the shared generator.
const SeedEnvVar = "SORT_PRNG_SEED"

var shared = sync.OnceValue(func() *Locked { //nolint:gochecknoglobals
	seed := ConfiguredSeed(context.Background())

	slog.Debug("Initializing shared pivot generator", "seed", seed)

	return NewLocked(seed)
})

// Default returns the process-wide generator. It starts from a fixed seed,
// so randomness on the default path is reproducible across runs.
func Default() *Locked {
	return shared()
}

// Intn draws from the shared generator.
func Intn(bound int) int {
	return Default().Intn(bound)
}

// ConfiguredSeed returns the seed named by SORT_PRNG_SEED, or DefaultSeed
// when the variable is unset or malformed.
func ConfiguredSeed(ctx context.Context) uint64 {
	return envutil.Uint64(ctx, SeedEnvVar, envutil.Default(DefaultSeed)).ValueOrElse(DefaultSeed)
}

// SeedFor derives a stable seed from a name, so independent streams (one per
// test, one per dataset) can be reproduced without coordinating numbers.
func SeedFor(name string) uint64 {
	return xxh3.HashString(name)
}
