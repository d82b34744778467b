package cashcast

import (
	"fmt"
	"hash/fnv"
	"io"
	"math/rand"
)

// Randomness design: instead of threading one mutable generator through the
// whole simulation, every (seed, run, event) tuple gets its own stream,
// derived purely from the tuple. Two consequences:
//   - the jitter of an event in a run never depends on how many other
//     events or runs were processed before it, so results are stable under
//     reordering and safe to compute concurrently;
//   - the same seed always replays the exact same report.

// seededSource returns a deterministic uniform random source for the key.
func seededSource(key string) *rand.Rand {
	h := fnv.New64a()
	io.WriteString(h, key)
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// streamKey derives the stream key for one event in one run.
func streamKey(seed string, run int, eventID string) string {
	return fmt.Sprintf("%s|%d|%s", seed, run, eventID)
}
