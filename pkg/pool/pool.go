// Package pool provides object pooling to reduce GC pressure in the window
// assembly hot path.
package pool

import (
	"sync"

	"github.com/versemetrics/rhymekit/pkg/phoneme"
)

// SequencePool pools phoneme scratch slices used when concatenating
// syllable chunks into sliding windows.
var SequencePool = sync.Pool{
	New: func() interface{} {
		return make(phoneme.Sequence, 0, 16)
	},
}

// GetSequence gets an empty scratch sequence from the pool.
func GetSequence() phoneme.Sequence {
	s := SequencePool.Get().(phoneme.Sequence)
	return s[:0]
}

// PutSequence returns a scratch sequence to the pool. The caller must not
// retain the slice or anything aliasing it.
func PutSequence(s phoneme.Sequence) {
	SequencePool.Put(s)
}
