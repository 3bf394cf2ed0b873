package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/charlie0129/battreport/pkg/client"
	"github.com/charlie0129/battreport/pkg/config"
	"github.com/charlie0129/battreport/pkg/report"
)

var errStrictRefused = errors.New("report contains placeholder data and strict mode is enabled")

func loadConfig() (config.Config, error) {
	return config.NewFile(configPath)
}

func newAPIClient() *client.Client {
	return client.NewClient(unixSocketPath)
}

// reportPath returns the first argument, or the configured report path.
func reportPath(conf config.Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return conf.ReportPath()
}

// loadReport parses the report at path, locally or through the daemon.
func loadReport(path string, remote bool) (*report.ParsedReport, error) {
	if !remote {
		return report.ParseFile(path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrDocumentUnreadable, err)
	}
	return newAPIClient().Parse(string(b))
}

func checkStrict(conf config.Config, r *report.ParsedReport) error {
	if conf.Strict() && r.Synthetic() {
		return errStrictRefused
	}
	return nil
}

func originBadge(o report.Origin) string {
	if o.Synthetic() {
		return color.New(color.Bold, color.FgYellow).Sprint("[placeholder]")
	}
	return color.New(color.FgGreen).Sprint("[from report]")
}

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}
