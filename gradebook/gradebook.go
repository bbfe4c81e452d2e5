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

// Package gradebook provides an ordered registry of student grades built on
// the ordtree container.  It keeps students sorted by name and renders a
// multi-line report in ascending order.  A student may be recorded more than
// once; lookups return the shallowest match and Drop removes one record at a
// time.
package gradebook

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ordtree/ordtree"
)

// Gradebook represents a registry of per-student grades ordered by student
// name.
type Gradebook struct {
	grades *ordtree.Tree[string, float64]
}

// New creates a new empty grade book.
func New() *Gradebook {
	return &Gradebook{grades: ordtree.New[string, float64]()}
}

// Record adds a grade for the given student.  Recording the same student
// again adds a second entry rather than replacing the first.
func (g *Gradebook) Record(student string, grade float64) {
	g.grades.Insert(student, grade)
}

// Grade returns the grade recorded for the given student.  The returned
// error wraps ordtree.ErrKeyNotFound when the student has no record.
func (g *Gradebook) Grade(student string) (float64, error) {
	grade, err := g.grades.Search(student)
	if err != nil {
		return 0, fmt.Errorf("gradebook: %s: %w", student, err)
	}
	return grade, nil
}

// Drop removes one record for the given student.  Dropping a student with no
// record has no effect.
func (g *Gradebook) Drop(student string) {
	g.grades.Remove(student)
}

// Students returns the number of records in the grade book.
func (g *Gradebook) Students() int {
	return g.grades.Len()
}

// Height returns the height of the underlying tree, or -1 if the grade book
// is empty.
func (g *Gradebook) Height() int {
	return g.grades.Height()
}

// Clone returns an independent deep copy of the grade book.
func (g *Gradebook) Clone() *Gradebook {
	return &Gradebook{grades: g.grades.Clone()}
}

// Assign replaces the contents of g with a deep copy of other's contents,
// releasing the previous records.
func (g *Gradebook) Assign(other *Gradebook) {
	g.grades.Assign(other.grades)
}

// Clear removes all records from the grade book.
func (g *Gradebook) Clear() {
	g.grades.Clear()
}

// WriteReport writes one line per record to w in ascending student order,
// each of the form:
//
//	Key: "<student>", Value: "<grade>"
func (g *Gradebook) WriteReport(w io.Writer) error {
	var err error
	g.grades.Ascend(func(student string, grade float64) bool {
		_, err = fmt.Fprintf(w, "Key: %q, Value: %q\n", student, formatGrade(grade))
		return err == nil
	})
	return err
}

// Report returns the report of WriteReport as a string.
func (g *Gradebook) Report() string {
	var sb strings.Builder
	g.WriteReport(&sb)
	return sb.String()
}

func formatGrade(grade float64) string {
	return strconv.FormatFloat(grade, 'g', -1, 64)
}
