package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlie0129/battreport/pkg/client"
	"github.com/charlie0129/battreport/pkg/generate"
	"github.com/charlie0129/battreport/pkg/powerinfo"
	"github.com/charlie0129/battreport/pkg/report"
)

var (
	logLevel       = "info"
	unixSocketPath = "/var/run/battreport.sock"
	configPath     = "battreport.json"
)

var (
	gBasic        = "Basic:"
	gAdvanced     = "Advanced:"
	commandGroups = []string{
		gBasic,
		gAdvanced,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	switch {
	case errors.Is(err, client.ErrDaemonNotRunning):
		fmt.Fprintln(os.Stderr, "\nError: battreport daemon is not running")
		fmt.Fprintln(os.Stderr, "Start it with 'battreport daemon' or drop the '--remote' flag.")
	case errors.Is(err, client.ErrPermissionDenied):
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Try running the command again with 'sudo'")
		fmt.Fprintln(os.Stderr, "  - Or point '--daemon-socket' at a socket your user can access")
	case errors.Is(err, report.ErrDocumentUnreadable):
		fmt.Fprintln(os.Stderr, "\nError: the battery report could not be read")
		fmt.Fprintln(os.Stderr, "Generate a fresh one with 'battreport generate' (Windows only) and try again.")
	case errors.Is(err, generate.ErrUnsupportedPlatform):
		fmt.Fprintln(os.Stderr, "\nError: battery reports can only be generated on Windows")
		fmt.Fprintln(os.Stderr, "Copy a report produced by 'powercfg /batteryreport' and run 'battreport show <file>'.")
	case errors.Is(err, powerinfo.ErrNoBattery):
		fmt.Fprintln(os.Stderr, "\nError: no battery found on this machine")
	case errors.Is(err, errStrictRefused):
		fmt.Fprintln(os.Stderr, "\nError: the report is missing data and placeholders were used")
		fmt.Fprintln(os.Stderr, "Set \"strict\": false in the config file to accept placeholder data.")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battreport",
		Short: "battreport extracts battery health data from battery reports",
		Long: `battreport extracts battery health data from the HTML battery report
produced by 'powercfg /batteryreport'.

It reads the design and full charge capacities, the cycle count, the capacity
history and the recent usage history, and derives the battery health from
them. Values missing from the report are filled with clearly marked
placeholders.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&configPath, "config", configPath, "config file path")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", unixSocketPath, "battreport daemon unix socket path")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewShowCommand(),
		NewExportCommand(),
		NewGenerateCommand(),
		NewLiveCommand(),
		NewEventsCommand(),
		NewConfigCommand(),
		NewDaemonCommand(),
		NewVersionCommand(),
	)

	return cmd
}
