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
	"encoding/csv"
	"runtime"
	"strconv"
)

// result is one row of the benchmark output.
type result struct {
	Name      string
	Load      LoadOrder
	Operation string
	LatencyNs int64
	MemMB     uint64
	Objects   uint64
}

type memStats struct {
	AllocMB     uint64
	HeapObjects uint64
}

// readMemStats forces a GC first so the sample reflects live data rather
// than garbage.
func readMemStats() memStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return memStats{
		AllocMB:     m.Alloc / 1024 / 1024,
		HeapObjects: m.HeapObjects,
	}
}

func record(w *csv.Writer, res result) {
	w.Write([]string{
		res.Name,
		string(res.Load),
		res.Operation,
		strconv.FormatInt(res.LatencyNs, 10),
		strconv.FormatUint(res.MemMB, 10),
		strconv.FormatUint(res.Objects, 10),
	})
}
