package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/skilletworks/lunchrush/core"
)

// Digest folds the full component state into a single xxhash value.
// Stores contribute in registration order and rows in (ID, Version)
// order, so two worlds that went through the same command and tick
// sequence produce the same digest. Used by the replay harness to
// verify determinism across runs.
func (w *World) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, store := range w.allStores {
		_, _ = h.WriteString(store.Name())
		store.DumpState(func(e core.Entity, repr string) {
			binary.LittleEndian.PutUint32(buf[0:4], e.ID)
			binary.LittleEndian.PutUint32(buf[4:8], e.Version)
			_, _ = h.Write(buf[:])
			_, _ = h.WriteString(repr)
		})
	}
	return h.Sum64()
}
