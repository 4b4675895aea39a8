// Package quicksort implements randomized in-place quicksort under three
// execution strategies that share one partition primitive.
//
//   - Sort recurses on the calling goroutine.
//   - Threaded spawns a goroutine per partition and joins it.
//   - Parallel forks through a bounded, work-stealing forkjoin.Pool.
//
// All three pick pivots with a prng.Source. By default that is the shared
// prng.Default() generator, which starts from a fixed seed, so runs are
// reproducible. Pass WithSeed or WithSource to make a call independent of
// every other caller. Under the concurrent strategies the order in which
// halves draw from the source varies between runs, so intermediate
// permutations differ, but the sorted result never does.
//
// The two halves of a partition are disjoint subslices of the input, split
// at the pivot, and each goroutine only ever touches its own half.
//
// None of the variants is stable. Elements equal to the pivot always go to
// its right, so inputs dominated by one key degrade to quadratic time.
package quicksort
