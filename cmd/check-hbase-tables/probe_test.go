package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/status"
)

func mockDial(client hbase.Client) dialFunc {
	return func(hbase.Config) (hbase.Client, error) {
		return client, nil
	}
}

func families(names ...string) map[string]hbase.ColumnDescriptor {
	m := make(map[string]hbase.ColumnDescriptor, len(names))
	for _, name := range names {
		m[name] = hbase.ColumnDescriptor{Name: name}
	}
	return m
}

func assignedRegions(servers ...string) []hbase.RegionInfo {
	rs := make([]hbase.RegionInfo, len(servers))
	for i, server := range servers {
		rs[i] = hbase.RegionInfo{Name: fmt.Sprintf("r%d", i), ServerName: server}
	}
	return rs
}

// expectHealthyCatalogs registers the reduced catalog sequence both catalog
// tables run on every probe.
func expectHealthyCatalogs(client *hbase.MockClient) {
	for _, catalog := range hbase.CatalogTables() {
		client.EXPECT().IsTableEnabled(gomock.Any(), catalog).Return(true, nil)
		client.EXPECT().ColumnDescriptors(gomock.Any(), catalog).Return(families("info"), nil)
	}
}

// runCommand executes the full root command against a mocked gateway and
// returns the printed output and the exit code execute decided on.
func runCommand(t *testing.T, client hbase.Client, args ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out, mockDial(client), func(int) { t.Fatal("watchdog fired") })
	cmd.SetArgs(args)

	code := status.OK.ExitCode()
	if err := cmd.Execute(); err != nil {
		var verdict *verdictError
		if errors.As(err, &verdict) {
			code = verdict.Status.ExitCode()
		} else {
			fmt.Fprintf(&out, "%s: %v\n", status.Unknown, err)
			code = status.Unknown.ExitCode()
		}
	}
	return out.String(), code
}

func TestProbe_AllHealthy(t *testing.T) {
	client := hbase.NewMockClient(gomock.NewController(t))
	client.EXPECT().ListTables(gomock.Any()).Return([]string{"orders", "shipments"}, nil)
	expectHealthyCatalogs(client)
	client.EXPECT().IsTableEnabled(gomock.Any(), "orders").Return(true, nil)
	client.EXPECT().ColumnDescriptors(gomock.Any(), "orders").Return(families("d"), nil)
	client.EXPECT().TableRegions(gomock.Any(), "orders").Return(assignedRegions("rs1", "rs2", "rs3"), nil)
	client.EXPECT().IsTableEnabled(gomock.Any(), "shipments").Return(true, nil)
	client.EXPECT().ColumnDescriptors(gomock.Any(), "shipments").Return(families("d"), nil)
	client.EXPECT().TableRegions(gomock.Any(), "shipments").Return(assignedRegions("rs1", "rs2"), nil)
	client.EXPECT().Close()

	out, code := runCommand(t, client, "-H", "hbase01", "-T", "orders,shipments")

	assert.Equal(t, 0, code)
	assert.Equal(t,
		"OK: 4 tables ok: '-ROOT-,.META.,orders,shipments' | 'orders regions'=3 'shipments regions'=2\n",
		out)
}

func TestProbe_UnassignedRegionsIsNotCritical(t *testing.T) {
	client := hbase.NewMockClient(gomock.NewController(t))
	client.EXPECT().ListTables(gomock.Any()).Return([]string{"orders", "shipments"}, nil)
	expectHealthyCatalogs(client)
	client.EXPECT().IsTableEnabled(gomock.Any(), "orders").Return(true, nil)
	client.EXPECT().ColumnDescriptors(gomock.Any(), "orders").Return(families("d"), nil)
	client.EXPECT().TableRegions(gomock.Any(), "orders").Return(assignedRegions("rs1", "rs2", "rs3"), nil)
	client.EXPECT().IsTableEnabled(gomock.Any(), "shipments").Return(true, nil)
	client.EXPECT().ColumnDescriptors(gomock.Any(), "shipments").Return(families("d"), nil)
	client.EXPECT().TableRegions(gomock.Any(), "shipments").Return(assignedRegions("rs1", ""), nil)
	client.EXPECT().Close()

	out, code := runCommand(t, client, "-H", "hbase01", "-T", "orders,shipments")

	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "OK: "), out)
	assert.Contains(t, out, "table with unassigned regions: 'shipments'")
	assert.Contains(t, out, "'orders regions'=3 'shipments regions'=2")
}

func TestProbe_TableNotFound(t *testing.T) {
	client := hbase.NewMockClient(gomock.NewController(t))
	client.EXPECT().ListTables(gomock.Any()).Return([]string{"orders"}, nil)
	expectHealthyCatalogs(client)
	client.EXPECT().Close()

	out, code := runCommand(t, client, "-H", "hbase01", "-T", "audit")

	assert.Equal(t, 2, code)
	assert.Contains(t, out, "table not found: 'audit'")
	assert.NotContains(t, out, "audit regions")
}

func TestProbe_TableDisabled(t *testing.T) {
	client := hbase.NewMockClient(gomock.NewController(t))
	client.EXPECT().ListTables(gomock.Any()).Return([]string{"users"}, nil)
	expectHealthyCatalogs(client)
	client.EXPECT().IsTableEnabled(gomock.Any(), "users").Return(false, nil)
	client.EXPECT().Close()

	out, code := runCommand(t, client, "-H", "hbase01", "-T", "users")

	assert.Equal(t, 2, code)
	assert.Contains(t, out, "table disabled: 'users'")
	assert.NotContains(t, out, "users regions")
	assert.NotContains(t, out, "ok: 'users'")
}

func TestProbe_EmptyClusterListing(t *testing.T) {
	client := hbase.NewMockClient(gomock.NewController(t))
	client.EXPECT().ListTables(gomock.Any()).Return(nil, nil)
	client.EXPECT().Close()

	out, code := runCommand(t, client, "-H", "hbase01", "-T", "orders")

	assert.Equal(t, 2, code)
	assert.Equal(t, "CRITICAL: no tables found in cluster\n", out)
}

func TestProbe_FatalSeverities(t *testing.T) {
	tests := []struct {
		name     string
		expect   func(client *hbase.MockClient, cause error)
		wantCode int
		wantLine string
	}{
		{
			name: "enabled call failure is critical",
			expect: func(client *hbase.MockClient, cause error) {
				client.EXPECT().IsTableEnabled(gomock.Any(), "orders").Return(false,
					&hbase.CallError{Op: hbase.OpIsTableEnabled, Table: "orders", Target: "hbase01:9090", Err: cause})
			},
			wantCode: 2,
			wantLine: "CRITICAL: isTableEnabled failed for table 'orders' on hbase01:9090: broken pipe\n",
		},
		{
			name: "columns call failure is critical",
			expect: func(client *hbase.MockClient, cause error) {
				client.EXPECT().IsTableEnabled(gomock.Any(), "orders").Return(true, nil)
				client.EXPECT().ColumnDescriptors(gomock.Any(), "orders").Return(nil,
					&hbase.CallError{Op: hbase.OpColumnDescriptors, Table: "orders", Target: "hbase01:9090", Err: cause})
			},
			wantCode: 2,
			wantLine: "CRITICAL: getColumnDescriptors failed for table 'orders' on hbase01:9090: broken pipe\n",
		},
		{
			name: "regions call failure is unknown",
			expect: func(client *hbase.MockClient, cause error) {
				client.EXPECT().IsTableEnabled(gomock.Any(), "orders").Return(true, nil)
				client.EXPECT().ColumnDescriptors(gomock.Any(), "orders").Return(families("d"), nil)
				client.EXPECT().TableRegions(gomock.Any(), "orders").Return(nil,
					&hbase.CallError{Op: hbase.OpTableRegions, Table: "orders", Target: "hbase01:9090", Err: cause})
			},
			wantCode: 3,
			wantLine: "UNKNOWN: getTableRegions failed for table 'orders' on hbase01:9090: broken pipe\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := hbase.NewMockClient(gomock.NewController(t))
			client.EXPECT().ListTables(gomock.Any()).Return([]string{"orders"}, nil)
			expectHealthyCatalogs(client)
			tt.expect(client, errors.New("broken pipe"))
			client.EXPECT().Close()

			out, code := runCommand(t, client, "-H", "hbase01", "-T", "orders")

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantLine, out)
		})
	}
}

func TestProbe_ConnectFailure(t *testing.T) {
	dial := func(cfg hbase.Config) (hbase.Client, error) {
		return nil, &hbase.CallError{Op: hbase.OpConnect, Target: "hbase01:9090", Err: errors.New("connection refused")}
	}
	var out bytes.Buffer
	cmd := newRootCommand(&out, dial, func(int) { t.Fatal("watchdog fired") })
	cmd.SetArgs([]string{"-H", "hbase01", "-T", "orders"})

	err := cmd.Execute()

	var verdict *verdictError
	require.ErrorAs(t, err, &verdict)
	assert.Equal(t, status.Critical, verdict.Status)
	assert.Equal(t, "CRITICAL: connect failed on hbase01:9090: connection refused\n", out.String())
}

func TestProbe_Idempotence(t *testing.T) {
	run := func() (string, int) {
		client := hbase.NewMockClient(gomock.NewController(t))
		client.EXPECT().ListTables(gomock.Any()).Return([]string{"orders"}, nil)
		expectHealthyCatalogs(client)
		client.EXPECT().IsTableEnabled(gomock.Any(), "orders").Return(true, nil)
		client.EXPECT().ColumnDescriptors(gomock.Any(), "orders").Return(families("d"), nil)
		client.EXPECT().TableRegions(gomock.Any(), "orders").Return(assignedRegions("rs1"), nil)
		client.EXPECT().Close()
		return runCommand(t, client, "-H", "hbase01", "-T", "orders")
	}

	firstOut, firstCode := run()
	secondOut, secondCode := run()

	assert.Equal(t, firstOut, secondOut)
	assert.Equal(t, firstCode, secondCode)
}

func TestListTables(t *testing.T) {
	client := hbase.NewMockClient(gomock.NewController(t))
	client.EXPECT().ListTables(gomock.Any()).Return([]string{"orders", "users"}, nil)
	client.EXPECT().Close()

	out, code := runCommand(t, client, "-H", "hbase01", "--list-tables")

	assert.Equal(t, 3, code)
	assert.Contains(t, out, "orders")
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "UNKNOWN: listed 2 tables on hbase01, no health check performed")
}
