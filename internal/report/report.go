// Package report collects per-table classifications and renders the probe's
// single verdict line.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/probeops/check-hbase-tables/internal/status"
)

// Bucket classifies a checked table. Every table lands in exactly one of the
// terminal buckets; BucketUnassignedRegions is recorded alongside whichever
// bucket the table otherwise reaches, and the renderer keeps it disjoint
// from BucketNoRegionservers.
type Bucket int

const (
	BucketOK Bucket = iota
	BucketNotFound
	BucketDisabled
	BucketNoColumns
	BucketNoRegions
	BucketNoRegionservers
	BucketUnassignedRegions
)

// clauseOrder is the fixed rendering order; the ok clause always comes last.
var clauseOrder = []Bucket{
	BucketNotFound,
	BucketDisabled,
	BucketNoColumns,
	BucketNoRegions,
	BucketNoRegionservers,
	BucketUnassignedRegions,
	BucketOK,
}

var bucketPhrases = map[Bucket]string{
	BucketOK:                "ok",
	BucketNotFound:          "not found",
	BucketDisabled:          "disabled",
	BucketNoColumns:         "without columns",
	BucketNoRegions:         "without regions",
	BucketNoRegionservers:   "without regionservers",
	BucketUnassignedRegions: "with unassigned regions",
}

// String returns the bucket's condition phrase as rendered in the verdict.
func (b Bucket) String() string {
	if phrase, ok := bucketPhrases[b]; ok {
		return phrase
	}
	return "unclassified"
}

// Results accumulates table classifications and region counts over one probe
// run. The overall severity starts at OK and is only ever raised.
type Results struct {
	buckets      map[Bucket][]string
	regionCounts map[string]int
	overall      status.Status
}

// NewResults returns an empty accumulator with overall severity OK.
func NewResults() *Results {
	return &Results{
		buckets:      make(map[Bucket][]string),
		regionCounts: make(map[string]int),
		overall:      status.OK,
	}
}

// Add records table in the given bucket. Missing and disabled tables raise
// the overall severity to CRITICAL immediately; the other classifications
// only show up in the message.
func (r *Results) Add(b Bucket, table string) {
	r.buckets[b] = append(r.buckets[b], table)
	if b == BucketNotFound || b == BucketDisabled {
		r.overall = status.Worse(r.overall, status.Critical)
	}
}

// SetRegionCount records the region count rendered as the table's perfdata
// metric. Only tables that passed the regions check get one.
func (r *Results) SetRegionCount(table string, count int) {
	r.regionCounts[table] = count
}

// Tables returns the bucket's members in the order they were recorded.
func (r *Results) Tables(b Bucket) []string {
	return append([]string(nil), r.buckets[b]...)
}

// RegionCounts returns a copy of the table-to-region-count map.
func (r *Results) RegionCounts() map[string]int {
	counts := make(map[string]int, len(r.regionCounts))
	for table, count := range r.regionCounts {
		counts[table] = count
	}
	return counts
}

// Status returns the overall severity accumulated so far.
func (r *Results) Status() status.Status {
	return r.overall
}

// Line renders the full verdict: the severity prefix, one clause per
// non-empty bucket in fixed order, the always-present ok clause, and the
// perfdata suffix when any region counts were recorded. Tables already
// reported without regionservers are dropped from the unassigned-regions
// clause so the two buckets stay exclusive.
func (r *Results) Line() string {
	clauses := make([]string, 0, len(clauseOrder))
	for _, b := range clauseOrder {
		members := r.buckets[b]
		if b == BucketUnassignedRegions {
			members = except(members, r.buckets[BucketNoRegionservers])
		}
		if len(members) == 0 && b != BucketOK {
			continue
		}
		clauses = append(clauses, clause(b, members))
	}
	line := fmt.Sprintf("%s: %s", r.overall, strings.Join(clauses, ", "))
	if perf := r.perfdata(); perf != "" {
		line += " | " + perf
	}
	return line
}

// clause renders one bucket as "<N> table(s) <condition>: '<a,b,c>'".
func clause(b Bucket, members []string) string {
	noun := "table"
	if len(members) > 1 {
		noun = "tables"
	}
	return fmt.Sprintf("%d %s %s: '%s'", len(members), noun, b, strings.Join(members, ","))
}

// perfdata renders the region-count metrics sorted by table name.
func (r *Results) perfdata() string {
	if len(r.regionCounts) == 0 {
		return ""
	}
	tables := make([]string, 0, len(r.regionCounts))
	for table := range r.regionCounts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	metrics := make([]string, 0, len(tables))
	for _, table := range tables {
		metrics = append(metrics, fmt.Sprintf("'%s regions'=%d", table, r.regionCounts[table]))
	}
	return strings.Join(metrics, " ")
}

// except returns members minus those present in exclude, preserving order.
func except(members, exclude []string) []string {
	if len(members) == 0 || len(exclude) == 0 {
		return members
	}
	drop := make(map[string]bool, len(exclude))
	for _, table := range exclude {
		drop[table] = true
	}
	var kept []string
	for _, table := range members {
		if !drop[table] {
			kept = append(kept, table)
		}
	}
	return kept
}
