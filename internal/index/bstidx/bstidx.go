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

// Package bstidx adapts the ordtree container to the benchmark's Index
// interface.
package bstidx

import (
	"errors"

	"github.com/ordtree/ordtree"
	"github.com/ordtree/ordtree/internal/index"
)

// Index is an in-memory index backed by an ordtree.Tree.  Inserting an
// existing key accumulates a duplicate entry; Get returns the shallowest
// match and Delete removes one entry at a time.
type Index struct {
	tree *ordtree.Tree[int64, []byte]
}

// New creates a new empty index.
func New() *Index {
	return &Index{tree: ordtree.New[int64, []byte]()}
}

// Insert adds the value for key to the index.
func (idx *Index) Insert(key int64, value []byte) error {
	idx.tree.Insert(key, value)
	return nil
}

// Get retrieves the value for key. Returns nil if not found.
func (idx *Index) Get(key int64) ([]byte, error) {
	value, err := idx.tree.Search(key)
	if errors.Is(err, ordtree.ErrKeyNotFound) {
		return nil, nil
	}
	return value, err
}

// Delete removes one entry for key from the index, if any exists.
func (idx *Index) Delete(key int64) error {
	idx.tree.Remove(key)
	return nil
}

// Range returns an iterator over all entries in [start, end] inclusive.
// The matching entries are collected up front; the container itself only
// offers full in-order traversal.
func (idx *Index) Range(start, end int64) (index.Iterator, error) {
	it := &rangeIterator{}
	idx.tree.Ascend(func(key int64, value []byte) bool {
		if key > end {
			return false
		}
		if start <= key {
			it.keys = append(it.keys, key)
			it.values = append(it.values, value)
		}
		return true
	})
	return it, nil
}

// Close releases the index contents.
func (idx *Index) Close() error {
	idx.tree.Clear()
	return nil
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Height returns the height of the underlying tree.  The suite reports it to
// show how the load order shapes the unbalanced tree.
func (idx *Index) Height() int {
	return idx.tree.Height()
}

type rangeIterator struct {
	keys   []int64
	values [][]byte
	pos    int
}

func (it *rangeIterator) Next() bool {
	if len(it.keys) <= it.pos {
		return false
	}
	it.pos++
	return true
}

func (it *rangeIterator) Key() int64 {
	return it.keys[it.pos-1]
}

func (it *rangeIterator) Value() []byte {
	return it.values[it.pos-1]
}

func (it *rangeIterator) Close() error {
	return nil
}
