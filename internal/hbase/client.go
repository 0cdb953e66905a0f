// Package hbase is a minimal client for the HBase Thrift gateway, covering
// only the calls the table probe needs.
package hbase

import "context"

//go:generate go tool mockgen -source=client.go -destination=mock_client.go -package=hbase

// Catalog tables are checked on every run but are exempt from identifier
// validation and never accepted as user input; the gateway does not expose
// region placement for them.
const (
	RootCatalog = "-ROOT-"
	MetaCatalog = ".META."
)

// CatalogTables returns the fixed catalog identifiers in check order.
func CatalogTables() []string {
	return []string{RootCatalog, MetaCatalog}
}

// IsCatalog reports whether name is one of the fixed catalog identifiers.
func IsCatalog(name string) bool {
	return name == RootCatalog || name == MetaCatalog
}

// RegionInfo describes one region of a table as reported by the gateway.
type RegionInfo struct {
	StartKey   []byte
	EndKey     []byte
	ID         int64
	Name       string
	Version    int8
	ServerName string
	Port       int32
}

// Assigned reports whether the region is currently hosted by a regionserver.
func (r RegionInfo) Assigned() bool {
	return r.ServerName != ""
}

// ColumnDescriptor carries the column-family schema attributes the gateway
// reports. Only presence matters to the probe; the attributes are kept for
// verbose diagnostics.
type ColumnDescriptor struct {
	Name        string
	MaxVersions int32
	Compression string
	InMemory    bool
	BloomFilter string
	TTL         int32
}

// Client is the narrow view of the gateway the probe depends on.
type Client interface {
	// ListTables returns the names of all user tables known to the cluster.
	ListTables(ctx context.Context) ([]string, error)

	// IsTableEnabled reports whether the named table is enabled.
	IsTableEnabled(ctx context.Context, table string) (bool, error)

	// ColumnDescriptors returns the table's column families keyed by family
	// name. An empty map is a successful call: the table has no columns.
	ColumnDescriptors(ctx context.Context, table string) (map[string]ColumnDescriptor, error)

	// TableRegions returns the table's regions with their current
	// assignments. An empty slice is a successful call: the table has no
	// regions.
	TableRegions(ctx context.Context, table string) ([]RegionInfo, error)

	// Close tears down the underlying transport.
	Close() error
}
