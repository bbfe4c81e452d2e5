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

// Package main implements the grade book demo.  It builds an ordered grade
// registry from name=grade arguments, looks up a single student, and prints
// the full report in ascending name order.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/ordtree/ordtree/gradebook"
)

func main() {
	student := flag.String("student", "Ellen", "student to look up")
	flag.Parse()

	if err := run(*student, flag.Args()); err != nil {
		glog.Fatalf("failed to run demo: %v", err)
	}
}

func run(student string, args []string) error {
	book, err := buildBook(args)
	if err != nil {
		return err
	}

	grade, err := book.Grade(student)
	if err != nil {
		return err
	}
	fmt.Printf("Grade of %s is %g\n", student, grade)

	if err := book.WriteReport(os.Stdout); err != nil {
		return err
	}
	fmt.Printf("Height: %d\n", book.Height())

	// A copy is fully independent: dropping the student from it leaves the
	// original untouched.
	archive := gradebook.New()
	archive.Assign(book)
	archive.Drop(student)
	fmt.Printf("Height after dropping %s from the copy: %d (original still %d)\n",
		student, archive.Height(), book.Height())

	return nil
}

// buildBook parses name=grade records into a grade book.  With no records it
// falls back to the classic five-student data set.
func buildBook(records []string) (*gradebook.Gradebook, error) {
	book := gradebook.New()

	if len(records) == 0 {
		book.Record("Ricardo", 2.5)
		book.Record("Ellen", 3.5)
		book.Record("Chen", 2.5)
		book.Record("Kevin", 3.25)
		book.Record("Kumar", 3.05)
		return book, nil
	}

	for _, record := range records {
		name, grade, ok := strings.Cut(record, "=")
		if !ok {
			return nil, fmt.Errorf("malformed record %q, want name=grade", record)
		}
		value, err := strconv.ParseFloat(grade, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed grade in %q: %w", record, err)
		}
		book.Record(name, value)
	}
	return book, nil
}
