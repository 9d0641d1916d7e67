// SPDX-License-Identifier: MIT

// Package record defines the flat Record shared by the coursework programs
// (students, patients, tickets, buildings, inventory items) and the key
// functions the sort, search and hash packages order it by.
package record

import "fmt"

// Record is a generic coursework entry.
//
// ID is the caller-assigned identifier; uniqueness is not enforced by any
// container in this module. Metric is the numeric field records are ranked by
// (marks, grade, priority, quantity). Detail is free text (course, issue, location).
type Record struct {
	ID     int     `yaml:"id" json:"id"`
	Name   string  `yaml:"name" json:"name"`
	Metric float64 `yaml:"metric" json:"metric"`
	Detail string  `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// String renders the record on one line.
func (r Record) String() string {
	if r.Detail == "" {
		return fmt.Sprintf("%d %s %g", r.ID, r.Name, r.Metric)
	}

	return fmt.Sprintf("%d %s %g (%s)", r.ID, r.Name, r.Metric, r.Detail)
}

// ByID is the key function ordering records by identifier.
func ByID(r Record) int { return r.ID }

// ByMetric is the key function ordering records by their numeric metric.
func ByMetric(r Record) float64 { return r.Metric }
