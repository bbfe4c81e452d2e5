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

// Package main implements the ordbench suite.  It loads the ordtree container
// and a Pebble baseline with the same keys, both in sequential and shuffled
// order, runs mixed workloads against each, and writes the measurements to a
// CSV file.
//
// Sequential load degrades the unbalanced tree to a chain, so both the load
// and the workloads against it are quadratic in the key count; keep the scale
// modest when benchmarking that configuration.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/ordtree/ordtree/internal/index"
	"github.com/ordtree/ordtree/internal/index/bstidx"
	"github.com/ordtree/ordtree/internal/index/lsm"
)

func main() {
	n := flag.Int("n", 20000, "number of keys to load per suite")
	out := flag.String("o", "ordbench.csv", "CSV output path")
	flag.Parse()

	if err := run(*n, *out); err != nil {
		glog.Fatalf("failed to run benchmark: %v", err)
	}
}

func run(n int, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"Structure", "LoadOrder", "Operation", "LatencyNs", "MemMB", "HeapObjects"})

	for _, order := range []LoadOrder{Sequential, Shuffled} {
		if err := runSuite(w, "ordtree", order, bstidx.New(), n); err != nil {
			return err
		}

		dir, err := os.MkdirTemp("", "ordbench-pebble-*")
		if err != nil {
			return err
		}
		idx, err := lsm.Open(dir)
		if err != nil {
			os.RemoveAll(dir)
			return err
		}
		err = runSuite(w, "pebble", order, idx, n)
		idx.Close()
		os.RemoveAll(dir)
		if err != nil {
			return err
		}
	}

	w.Flush()
	glog.Infof("benchmark complete, results written to %s", out)
	return w.Error()
}

// runSuite loads n keys into idx in the given order, then runs the workload
// mixes, recording one CSV row per phase.  The index is closed by the caller.
func runSuite(w *csv.Writer, name string, order LoadOrder, idx index.Index, n int) error {
	glog.Infof("testing %s (load order: %s)", name, order)

	start := time.Now()
	for _, key := range order.Keys(n) {
		if err := idx.Insert(key, []byte("v")); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	loadLatency := time.Since(start).Nanoseconds() / int64(n)

	if h, ok := idx.(interface{ Height() int }); ok {
		glog.Infof("%s height after %s load of %d keys: %d", name, order, n, h.Height())
	}

	stats := readMemStats()
	record(w, result{name, order, "Load", loadLatency, stats.AllocMB, stats.HeapObjects})

	start = time.Now()
	if err := executeWorkload(idx, OLTP, n/2); err != nil {
		return err
	}
	record(w, result{name, order, "Workload_OLTP", time.Since(start).Nanoseconds() / int64(n/2), readMemStats().AllocMB, 0})

	start = time.Now()
	if err := executeWorkload(idx, OLAP, n/2); err != nil {
		return err
	}
	record(w, result{name, order, "Workload_OLAP", time.Since(start).Nanoseconds() / int64(n/2), readMemStats().AllocMB, 0})

	start = time.Now()
	if err := executeWorkload(idx, Reporting, 100); err != nil {
		return err
	}
	record(w, result{name, order, "Workload_Range", time.Since(start).Nanoseconds() / 100, readMemStats().AllocMB, 0})

	return nil
}
