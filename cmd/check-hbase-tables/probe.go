package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/probeops/check-hbase-tables/internal/checks"
	"github.com/probeops/check-hbase-tables/internal/config"
	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/status"
)

// runProbe connects to the gateway, checks every table, and prints the one
// verdict line. A non-OK verdict comes back as a *verdictError so main can
// exit with the matching code.
func runProbe(ctx context.Context, cfg *config.Config, dial dialFunc, stdout io.Writer) error {
	client, err := dial(hbase.Config{Host: cfg.Host, Port: cfg.Port, Timeout: cfg.Timeout})
	if err != nil {
		return printVerdict(stdout, fatalStatus(err), err.Error())
	}
	defer client.Close()

	results, err := checks.NewRunner(client).Run(ctx, cfg.Tables)
	if err != nil {
		return printVerdict(stdout, fatalStatus(err), err.Error())
	}
	fmt.Fprintln(stdout, results.Line())
	if st := results.Status(); st != status.OK {
		return &verdictError{Status: st}
	}
	return nil
}

// runListTables prints the cluster's table listing instead of a health
// check. The verdict is UNKNOWN on purpose: a listing is operator
// diagnostics, never a statement about table health.
func runListTables(ctx context.Context, cfg *config.Config, dial dialFunc, stdout io.Writer) error {
	client, err := dial(hbase.Config{Host: cfg.Host, Port: cfg.Port, Timeout: cfg.Timeout})
	if err != nil {
		return printVerdict(stdout, fatalStatus(err), err.Error())
	}
	defer client.Close()

	names, err := client.ListTables(ctx)
	if err != nil {
		return printVerdict(stdout, fatalStatus(err), err.Error())
	}

	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{"Table"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, name := range names {
		table.Append([]string{name})
	}
	table.Render()

	return printVerdict(stdout, status.Unknown,
		fmt.Sprintf("listed %d tables on %s, no health check performed", len(names), cfg.Host))
}

// printVerdict emits the final line and wraps the severity for main.
func printVerdict(stdout io.Writer, st status.Status, message string) error {
	fmt.Fprintf(stdout, "%s: %s\n", st, message)
	if st == status.OK {
		return nil
	}
	return &verdictError{Status: st}
}

// fatalStatus maps an aborting error to its verdict severity. A failed
// regions call is UNKNOWN: an empty region list buckets as a finding, so a
// regions-call error means the answer itself could not be trusted. Every
// other failure (connect, listing, empty cluster, enabled or columns call)
// is CRITICAL.
func fatalStatus(err error) status.Status {
	var call *hbase.CallError
	if errors.As(err, &call) && call.Op == hbase.OpTableRegions {
		return status.Unknown
	}
	return status.Critical
}
