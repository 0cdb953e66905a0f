// Package checks runs the fixed per-table health sequence against the
// gateway and classifies each table's outcome.
package checks

import (
	"context"

	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/report"
)

// StepResult holds the outcome of a single check step.
type StepResult struct {
	// Bucket is the classification the step assigns. BucketOK means the
	// step passed and the table's sequence continues.
	Bucket report.Bucket
	// Summary is a human-readable one-line result for verbose diagnostics.
	Summary string
	// Data carries an optional step-specific payload, such as the regions
	// step's RegionSummary.
	Data any
}

// Step is one named check in a table's fixed sequence. A step returning an
// error aborts the whole run; a classification other than BucketOK stops
// only the current table's sequence.
type Step interface {
	Name() string
	Run(ctx context.Context, client hbase.Client, table string) (*StepResult, error)
}

// Sequence returns the full check sequence for a user table, in run order.
func Sequence() []Step {
	return []Step{
		&enabledStep{},
		&columnsStep{},
		&regionsStep{},
	}
}

// CatalogSequence returns the reduced sequence for the catalog tables; the
// gateway does not expose region placement for them.
func CatalogSequence() []Step {
	return []Step{
		&enabledStep{},
		&columnsStep{},
	}
}
