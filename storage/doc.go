// Package storage is the raw storage manager behind vector.Vector.
//
// It hands out blocks of exactly the requested number of slots, moves blocks
// on reallocation, and zeroes blocks on release so nothing they referenced is
// kept alive. Power-of-two blocks up to MaxPooledSlots are recycled through
// per-type sync.Pool classes; every other capacity is a plain allocation.
//
// The package also owns a small byte scratch pool used by encoders.
package storage
