package checks

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/report"
)

// ErrNoTables reports a cluster whose listing came back empty; there is
// nothing meaningful to check against such a cluster.
var ErrNoTables = errors.New("no tables found in cluster")

// Runner drives the fixed check sequence over the catalog tables and the
// requested user tables, one table at a time over a single client.
type Runner struct {
	client  hbase.Client
	user    []Step
	catalog []Step
}

// NewRunner returns a Runner checking tables through client.
func NewRunner(client hbase.Client) *Runner {
	return &Runner{
		client:  client,
		user:    Sequence(),
		catalog: CatalogSequence(),
	}
}

// Run checks the two catalog tables and then every user table, in order.
// Existence is decided against a single listing snapshot fetched up front,
// not per-table calls: a table missing from the snapshot is classified not
// found and skips its sequence entirely. Any returned error is fatal for
// the whole probe.
func (r *Runner) Run(ctx context.Context, tables []string) (*report.Results, error) {
	names, err := r.client.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoTables
	}
	log.Infof("cluster reports %d tables", len(names))

	known := make(map[string]bool, len(names))
	for _, name := range names {
		known[name] = true
	}

	results := report.NewResults()
	for _, table := range hbase.CatalogTables() {
		if err := r.check(ctx, results, table, r.catalog); err != nil {
			return nil, err
		}
	}
	for _, table := range tables {
		if !known[table] {
			log.Infof("table %q: not in cluster listing", table)
			results.Add(report.BucketNotFound, table)
			continue
		}
		if err := r.check(ctx, results, table, r.user); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// check runs one table's step sequence, recording the first non-passing
// classification and stopping there. A passing regions step also records
// the table's region count and any partially unassigned state.
func (r *Runner) check(ctx context.Context, results *report.Results, table string, steps []Step) error {
	for _, step := range steps {
		result, err := step.Run(ctx, r.client, table)
		if err != nil {
			return err
		}
		log.Debugf("table %q: %s: %s", table, step.Name(), result.Summary)
		if summary, ok := result.Data.(*RegionSummary); ok {
			if summary.Unassigned > 0 {
				results.Add(report.BucketUnassignedRegions, table)
			}
			if result.Bucket == report.BucketOK {
				results.SetRegionCount(table, summary.Count)
			}
		}
		if result.Bucket != report.BucketOK {
			log.Infof("table %q: %s", table, result.Bucket)
			results.Add(result.Bucket, table)
			return nil
		}
	}
	results.Add(report.BucketOK, table)
	return nil
}
