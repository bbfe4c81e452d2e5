// Copyright 2024 The ordtree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lsm wraps Pebble, CockroachDB's LSM storage engine, behind the
// benchmark's Index interface so the ordtree container can be measured
// against a production ordered key-value engine.
package lsm

import (
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/ordtree/ordtree/internal/index"
)

// Index is an ordered key-value index persisted by Pebble under its own
// directory.
type Index struct {
	db *pebble.DB
}

// Open opens (or creates) a Pebble database at the given directory path.
func Open(dir string) (*Index, error) {
	opts := &pebble.Options{
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}

	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("lsm: open: %w", err)
	}
	return &Index{db: db}, nil
}

// Insert inserts or updates the value for key.
func (idx *Index) Insert(key int64, value []byte) error {
	return idx.db.Set(encodeKey(key), value, pebble.NoSync)
}

// Get retrieves the value for key. Returns nil if not found.
func (idx *Index) Get(key int64) ([]byte, error) {
	val, closer, err := idx.db.Get(encodeKey(key))
	if err == pebble.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lsm: get: %w", err)
	}
	// val is only valid until closer.Close(), so copy it out.
	out := make([]byte, len(val))
	copy(out, val)
	if err := closer.Close(); err != nil {
		return nil, fmt.Errorf("lsm: get: %w", err)
	}
	return out, nil
}

// Delete removes the key from the store.
func (idx *Index) Delete(key int64) error {
	if err := idx.db.Delete(encodeKey(key), pebble.NoSync); err != nil {
		return fmt.Errorf("lsm: delete: %w", err)
	}
	return nil
}

// Range returns an iterator over all entries in [start, end] inclusive.
func (idx *Index) Range(start, end int64) (index.Iterator, error) {
	iter, err := idx.db.NewIter(&pebble.IterOptions{
		LowerBound: encodeKey(start),
		// Pebble's upper bound is exclusive, the Index interface's is not.
		UpperBound: encodeKey(end + 1),
	})
	if err != nil {
		return nil, fmt.Errorf("lsm: range: %w", err)
	}
	return &rangeIterator{iter: iter, first: iter.First()}, nil
}

// Close cleanly shuts down Pebble, flushing any in-memory state.
func (idx *Index) Close() error {
	return idx.db.Close()
}

type rangeIterator struct {
	iter    *pebble.Iterator
	first   bool
	started bool
}

func (it *rangeIterator) Next() bool {
	if !it.started {
		it.started = true
		return it.first
	}
	return it.iter.Next()
}

func (it *rangeIterator) Key() int64 {
	return decodeKey(it.iter.Key())
}

func (it *rangeIterator) Value() []byte {
	// The slice is only valid until the iterator advances, so copy it out.
	out := make([]byte, len(it.iter.Value()))
	copy(out, it.iter.Value())
	return out
}

func (it *rangeIterator) Close() error {
	return it.iter.Close()
}

// encodeKey encodes an int64 as a big-endian 8-byte slice.  Big-endian
// preserves sort order, which Pebble relies on.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k))
	return b
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
