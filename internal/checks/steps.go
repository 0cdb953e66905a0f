package checks

import (
	"context"
	"fmt"

	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/report"
)

// enabledStep classifies tables the cluster reports as disabled.
type enabledStep struct{}

var _ Step = (*enabledStep)(nil)

func (*enabledStep) Name() string { return "enabled" }

func (*enabledStep) Run(ctx context.Context, client hbase.Client, table string) (*StepResult, error) {
	enabled, err := client.IsTableEnabled(ctx, table)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return &StepResult{Bucket: report.BucketDisabled, Summary: "table is disabled"}, nil
	}
	return &StepResult{Bucket: report.BucketOK, Summary: "table is enabled"}, nil
}

// columnsStep classifies tables with no column families. An empty descriptor
// map is a successful call, not an error.
type columnsStep struct{}

var _ Step = (*columnsStep)(nil)

func (*columnsStep) Name() string { return "columns" }

func (*columnsStep) Run(ctx context.Context, client hbase.Client, table string) (*StepResult, error) {
	columns, err := client.ColumnDescriptors(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return &StepResult{Bucket: report.BucketNoColumns, Summary: "table has no column families"}, nil
	}
	return &StepResult{
		Bucket:  report.BucketOK,
		Summary: fmt.Sprintf("%d column families", len(columns)),
	}, nil
}

// RegionSummary is the regions step's payload: the region count and the
// assignment split, used for the unassigned bucket and the perfdata metric.
type RegionSummary struct {
	Count      int
	Assigned   int
	Unassigned int
}

// regionsStep classifies tables by region assignment. No regions at all and
// zero assigned regions are terminal classifications; a mix of assigned and
// unassigned regions passes but is surfaced through the summary payload.
type regionsStep struct{}

var _ Step = (*regionsStep)(nil)

func (*regionsStep) Name() string { return "regions" }

func (*regionsStep) Run(ctx context.Context, client hbase.Client, table string) (*StepResult, error) {
	regions, err := client.TableRegions(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return &StepResult{Bucket: report.BucketNoRegions, Summary: "table has no regions"}, nil
	}
	summary := &RegionSummary{Count: len(regions)}
	for _, region := range regions {
		if region.Assigned() {
			summary.Assigned++
		} else {
			summary.Unassigned++
		}
	}
	result := &StepResult{
		Bucket:  report.BucketOK,
		Summary: fmt.Sprintf("%d of %d regions assigned", summary.Assigned, summary.Count),
		Data:    summary,
	}
	if summary.Assigned == 0 {
		result.Bucket = report.BucketNoRegionservers
	}
	return result, nil
}
