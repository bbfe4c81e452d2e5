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

package main

import (
	"math/rand"

	"github.com/ordtree/ordtree/internal/index"
)

// LoadOrder controls the order keys are loaded into an index.  The ordtree
// container is unbalanced, so the load order determines the resulting height.
type LoadOrder string

const (
	Sequential LoadOrder = "sequential"
	Shuffled   LoadOrder = "shuffled"
)

// Keys returns the keys [0, n) in this load order.
func (o LoadOrder) Keys(n int) []int64 {
	keys := make([]int64, n)
	switch o {
	case Sequential:
		for i := range keys {
			keys[i] = int64(i)
		}
	case Shuffled:
		for i, v := range rand.Perm(n) {
			keys[i] = int64(v)
		}
	}
	return keys
}

// WorkloadType selects a mixed distribution of operations.
type WorkloadType string

const (
	OLTP      WorkloadType = "OLTP (90/10)"
	OLAP      WorkloadType = "OLAP (10/90)"
	Reporting WorkloadType = "Reporting (Range)"
)

// executeWorkload runs ops operations of the given mix against idx.
func executeWorkload(idx index.Index, wType WorkloadType, ops int) error {
	for i := 0; i < ops; i++ {
		choice := rand.Intn(100)
		key := int64(rand.Intn(ops))

		switch wType {
		case OLTP:
			if choice < 90 {
				if _, err := idx.Get(key); err != nil {
					return err
				}
			} else if err := idx.Insert(key, []byte("x")); err != nil {
				return err
			}
		case OLAP:
			if choice < 10 {
				if _, err := idx.Get(key); err != nil {
					return err
				}
			} else if err := idx.Insert(key, []byte("x")); err != nil {
				return err
			}
		case Reporting:
			it, err := idx.Range(key, key+100)
			if err != nil {
				return err
			}
			for it.Next() {
			}
			if err := it.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}
