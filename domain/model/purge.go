package model

import "time"

// PurgeStatus classifies the outcome of a single purge dispatch.
type PurgeStatus string

const (
	StatusSuccess PurgeStatus = "SUCCESS"
	StatusFailure PurgeStatus = "FAILURE"
)

// PurgeRequest identifies one cache entry to drop: a domain plus a record type.
type PurgeRequest struct {
	Domain string     `json:"domain"`
	Type   RecordType `json:"type"`
}

// PurgeOutcome is the classified result of one dispatch. Message carries the
// trimmed response body, or the transport error text when the request never
// produced a response. Immutable once created.
type PurgeOutcome struct {
	Type    RecordType  `json:"type"`
	Status  PurgeStatus `json:"status"`
	Message string      `json:"message"`
}

// Success reports whether the purge request was accepted by the remote cache.
func (o PurgeOutcome) Success() bool { return o.Status == StatusSuccess }

// ResultSet accumulates the outcomes of one purge run. Outcomes are appended
// in arrival order while the run executes and the set is read-only afterwards.
// The JSON shape is the export file format.
type ResultSet struct {
	Domain    string         `json:"domain"`
	Successes []PurgeOutcome `json:"successes"`
	Failures  []PurgeOutcome `json:"failures"`
}

// NewResultSet returns an empty ResultSet for the given domain. The buckets
// are non-nil so an exported run with no outcomes still serializes as arrays.
func NewResultSet(domain string) *ResultSet {
	return &ResultSet{
		Domain:    domain,
		Successes: []PurgeOutcome{},
		Failures:  []PurgeOutcome{},
	}
}

// Add routes an outcome into the success or failure bucket.
func (rs *ResultSet) Add(o PurgeOutcome) {
	if o.Success() {
		rs.Successes = append(rs.Successes, o)
	} else {
		rs.Failures = append(rs.Failures, o)
	}
}

// Len returns the total number of collected outcomes.
func (rs *ResultSet) Len() int { return len(rs.Successes) + len(rs.Failures) }

// Outcomes returns all outcomes, successes first, each bucket in accumulation
// order. This is the row order of CSV exports and of persisted runs.
func (rs *ResultSet) Outcomes() []PurgeOutcome {
	out := make([]PurgeOutcome, 0, rs.Len())
	out = append(out, rs.Successes...)
	out = append(out, rs.Failures...)
	return out
}

// Run is the persisted record of one completed purge run.
type Run struct {
	ID         string
	Domain     string
	Threads    int
	Delay      time.Duration
	Successes  int
	Failures   int
	Outcomes   []PurgeOutcome
	StartedAt  time.Time
	FinishedAt time.Time
}
