package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/status"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Exit))
}

// execute runs the probe command and maps its outcome to a plugin exit
// code. The scheduler contract is one line on stdout no matter what: when
// the command fails before a verdict could be printed (usage errors, bad
// config), the line is synthesized here with UNKNOWN severity.
func execute(args []string, stdout io.Writer, exit func(int)) int {
	cmd := newRootCommand(stdout, hbase.Dial, exit)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var verdict *verdictError
		if errors.As(err, &verdict) {
			// The probe already printed its line; only the code is left.
			return verdict.Status.ExitCode()
		}
		fmt.Fprintf(stdout, "%s: %v\n", status.Unknown, err)
		return status.Unknown.ExitCode()
	}
	return status.OK.ExitCode()
}
