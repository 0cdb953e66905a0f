package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	easy "github.com/t-tomalak/logrus-easy-formatter"

	"github.com/probeops/check-hbase-tables/internal/config"
	"github.com/probeops/check-hbase-tables/internal/hbase"
	"github.com/probeops/check-hbase-tables/internal/status"
)

var version = "dev"

// dialFunc opens a gateway connection; swapped for a mock-backed dialer in
// tests.
type dialFunc func(hbase.Config) (hbase.Client, error)

// verdictError carries a non-OK verdict out of the command after its status
// line has been printed, so main can turn it into the matching exit code.
type verdictError struct {
	Status status.Status
}

func (e *verdictError) Error() string {
	return e.Status.String()
}

func newRootCommand(stdout io.Writer, dial dialFunc, exit func(int)) *cobra.Command {
	var (
		configFile string
		verbose    int
		listTables bool
	)

	cmd := &cobra.Command{
		Use:   "check-hbase-tables",
		Short: "Nagios-compatible probe for HBase table health",
		Long: `check-hbase-tables connects to an HBase Thrift gateway and verifies that
the named tables exist, are enabled, have column families, and have their
regions assigned to regionservers. The -ROOT- and .META. catalog tables are
always checked. It prints exactly one status line and exits 0 (OK),
1 (WARNING), 2 (CRITICAL), or 3 (UNKNOWN).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setUpLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configFile, listTables)
			if err != nil {
				return err
			}

			// The watchdog is the hard stop: when checks wedge inside a
			// socket call past the deadline, it prints the self-timeout
			// verdict and kills the process.
			watchdog := time.AfterFunc(cfg.Timeout, func() {
				fmt.Fprintf(stdout, "%s: check-hbase-tables timed out after %d seconds\n",
					status.Unknown, int(cfg.Timeout.Seconds()))
				exit(status.Unknown.ExitCode())
			})
			defer watchdog.Stop()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			if listTables {
				return runListTables(ctx, cfg, dial, stdout)
			}
			return runProbe(ctx, cfg, dial, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringP("host", "H", "", "gateway hostname or IP address (required)")
	flags.IntP("port", "P", config.DefaultPort, "gateway Thrift port")
	flags.StringP("tables", "T", "", "comma-separated tables to check (required)")
	flags.IntP("timeout", "t", config.DefaultTimeoutSeconds, "overall deadline in seconds")
	flags.CountVarP(&verbose, "verbose", "v", "diagnostics on stderr (-v info, -vv debug)")
	flags.BoolVar(&listTables, "list-tables", false, "list the cluster's tables and exit UNKNOWN")
	flags.StringVar(&configFile, "config", "", "optional YAML file with connection defaults")

	return cmd
}

// setUpLogging routes diagnostics to stderr so stdout stays reserved for
// the status line. The default level only surfaces warnings; -v adds
// per-table progress, -vv adds per-call detail with source locations.
func setUpLogging(verbose int) {
	log.SetOutput(os.Stderr)
	switch {
	case verbose >= 2:
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
		log.SetFormatter(&log.TextFormatter{
			DisableLevelTruncation: true,
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	case verbose == 1:
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&easy.Formatter{LogFormat: "%lvl% %msg%\n"})
	default:
		log.SetLevel(log.WarnLevel)
		log.SetFormatter(&easy.Formatter{LogFormat: "%msg%\n"})
	}
}
