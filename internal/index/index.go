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

// Package index defines the engine-neutral interface the benchmark suite
// drives, so the ordtree container can be measured alongside an LSM baseline
// behind the same operations.
package index

// Index is an ordered key-value index over int64 keys.
type Index interface {
	// Insert adds the value for key to the index.
	Insert(key int64, value []byte) error

	// Get retrieves the value for key, or nil if the key is absent.
	Get(key int64) ([]byte, error)

	// Delete removes the key from the index.  Deleting an absent key is
	// not an error.
	Delete(key int64) error

	// Range returns an iterator over all entries in [start, end] inclusive,
	// in ascending key order.
	Range(start, end int64) (Iterator, error)

	// Close releases the resources held by the index.
	Close() error
}

// Iterator walks the result of a Range call.
type Iterator interface {
	// Next advances the iterator and reports whether an entry is available.
	Next() bool

	// Key returns the key of the current entry.
	Key() int64

	// Value returns the value of the current entry.
	Value() []byte

	// Close releases the resources held by the iterator.
	Close() error
}
