package models

import "time"

// LogRecord is one well-formed log line: when it happened and what kind of
// event it was. Records are immutable and only live for the duration of a run.
type LogRecord struct {
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
}

// Bucket is one aggregation slot. Time is set for interval buckets and zero
// for category buckets; Label is always set and is what charts and dumps
// display.
type Bucket struct {
	Label string    `json:"label"`
	Time  time.Time `json:"-"`
	Count int       `json:"count"`
}

// Series is an ordered sequence of buckets, ready for rendering.
type Series []Bucket

// Total returns the number of records folded into the series.
func (s Series) Total() int {
	total := 0
	for _, b := range s {
		total += b.Count
	}
	return total
}

// Labels returns the bucket labels in series order.
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, b := range s {
		labels[i] = b.Label
	}
	return labels
}
