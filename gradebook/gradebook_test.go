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

package gradebook

import (
	"errors"
	"testing"

	"github.com/ordtree/ordtree"
)

// newClassbook builds the classic five-student grade book:
//
//	        Ricardo
//	        /
//	    Ellen
//	     /  \
//	  Chen  Kevin
//	           \
//	           Kumar
func newClassbook() *Gradebook {
	g := New()
	g.Record("Ricardo", 2.5)
	g.Record("Ellen", 3.5)
	g.Record("Chen", 2.5)
	g.Record("Kevin", 3.25)
	g.Record("Kumar", 3.05)
	return g
}

func TestGradeLookup(t *testing.T) {
	g := newClassbook()

	if got, err := g.Grade("Ellen"); err != nil || got != 3.5 {
		t.Fatalf("expected Ellen's grade 3.5, got %v (%v)", got, err)
	}
	if g.Students() != 5 {
		t.Fatalf("expected 5 records, got %d", g.Students())
	}
	if got := g.Height(); got != 3 {
		t.Fatalf("expected height 3, got %d", got)
	}

	_, err := g.Grade("Priya")
	if !errors.Is(err, ordtree.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for missing student, got %v", err)
	}
}

func TestReport(t *testing.T) {
	g := newClassbook()

	expected := `Key: "Chen", Value: "2.5"
Key: "Ellen", Value: "3.5"
Key: "Kevin", Value: "3.25"
Key: "Kumar", Value: "3.05"
Key: "Ricardo", Value: "2.5"
`
	if got := g.Report(); got != expected {
		t.Fatalf("expected report:\n%s\ngot:\n%s", expected, got)
	}
}

func TestCloneAndDrop(t *testing.T) {
	g := newClassbook()
	clone := g.Clone()
	clone.Drop("Ellen")

	if got := clone.Height(); got != 2 {
		t.Fatalf("expected clone height 2, got %d", got)
	}
	if got := g.Height(); got != 3 {
		t.Fatalf("expected original height to remain 3, got %d", got)
	}
	if _, err := g.Grade("Ellen"); err != nil {
		t.Fatalf("expected original to keep Ellen, got %v", err)
	}
	if _, err := clone.Grade("Ellen"); !errors.Is(err, ordtree.ErrKeyNotFound) {
		t.Fatalf("expected Ellen dropped from clone, got %v", err)
	}

	// Dropping a missing student is a no-op, not an error.
	before := clone.Report()
	clone.Drop("Ellen")
	if got := clone.Report(); got != before {
		t.Fatalf("expected report unchanged by dropping a missing student")
	}
}

func TestAssign(t *testing.T) {
	g := newClassbook()
	other := New()
	other.Record("Priya", 4.0)

	other.Assign(g)
	if other.Students() != 5 {
		t.Fatalf("expected 5 records after assignment, got %d", other.Students())
	}
	if _, err := other.Grade("Priya"); !errors.Is(err, ordtree.ErrKeyNotFound) {
		t.Fatalf("expected previous records released, got %v", err)
	}

	other.Drop("Chen")
	if _, err := g.Grade("Chen"); err != nil {
		t.Fatalf("expected source unaffected by mutation of assignee, got %v", err)
	}
}

func TestClear(t *testing.T) {
	g := newClassbook()
	g.Clear()
	if g.Students() != 0 || g.Height() != -1 || g.Report() != "" {
		t.Fatalf("expected empty grade book after Clear")
	}
}
