// Package stats collects per-run statistics for the word filter: how
// many lines were read, how many words survived, and why the rest were
// rejected.
package stats

import (
	"sync"
	"time"
)

// Reason classifies why a line was rejected, or ReasonNone if it was kept.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonEmpty    Reason = "empty"
	ReasonTooShort Reason = "too_short"
	ReasonTooLong  Reason = "too_long"
	ReasonNotAlpha Reason = "not_alphabetic"
)

// Report holds the outcome of a single filter run.
type Report struct {
	LinesRead        int           `json:"lines_read"`
	Kept             int           `json:"kept"`
	RejectedEmpty    int           `json:"rejected_empty"`
	RejectedTooShort int           `json:"rejected_too_short"`
	RejectedTooLong  int           `json:"rejected_too_long"`
	RejectedNotAlpha int           `json:"rejected_not_alphabetic"`
	Duration         time.Duration `json:"duration_ns"`
}

// Rejected returns the total number of rejected lines.
func (r *Report) Rejected() int {
	return r.RejectedEmpty + r.RejectedTooShort + r.RejectedTooLong + r.RejectedNotAlpha
}

// Collector accumulates a Report. Safe for concurrent use.
type Collector struct {
	mutex  sync.Mutex
	report Report
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record counts one processed line with its verdict.
func (c *Collector) Record(reason Reason) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.report.LinesRead++
	switch reason {
	case ReasonNone:
		c.report.Kept++
	case ReasonEmpty:
		c.report.RejectedEmpty++
	case ReasonTooShort:
		c.report.RejectedTooShort++
	case ReasonTooLong:
		c.report.RejectedTooLong++
	case ReasonNotAlpha:
		c.report.RejectedNotAlpha++
	}
}

// SetDuration records how long the run took.
func (c *Collector) SetDuration(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.report.Duration = d
}

// Snapshot returns a copy of the current report.
func (c *Collector) Snapshot() Report {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.report
}
