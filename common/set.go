package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Set is a storage-backed collection of unique byte string members kept
// under a common key prefix, one storage entry per member. Lookups and
// updates touch a single key, enumeration is a prefix search.
type Set struct {
	prefix []byte
}

// NewSet returns a Set keeping its members under the given prefix.
func NewSet(prefix []byte) Set {
	return Set{prefix: prefix}
}

// Add puts member into the set and returns true if it was not there before.
func (s Set) Add(ctx storage.Context, member []byte) bool {
	key := append(s.prefix, member...)
	if storage.Get(ctx, key) != nil {
		return false
	}

	storage.Put(ctx, key, []byte{1})
	return true
}

// Remove drops member from the set and returns true if it was there.
func (s Set) Remove(ctx storage.Context, member []byte) bool {
	key := append(s.prefix, member...)
	if storage.Get(ctx, key) == nil {
		return false
	}

	storage.Delete(ctx, key)
	return true
}

// Contains returns true if member is in the set.
func (s Set) Contains(ctx storage.Context, member []byte) bool {
	return storage.Get(ctx, append(s.prefix, member...)) != nil
}

// At returns the member at the given index in storage order or nil when
// index is negative or not less than the set size.
func (s Set) At(ctx storage.Context, index int) []byte {
	if index < 0 {
		return nil
	}

	it := s.Iterate(ctx)
	for iterator.Next(it) {
		if index == 0 {
			return iterator.Value(it).([]byte)
		}
		index--
	}

	return nil
}

// Iterate returns an iterator over set members in storage order.
func (s Set) Iterate(ctx storage.Context) iterator.Iterator {
	return storage.Find(ctx, s.prefix, storage.KeysOnly|storage.RemovePrefix)
}
