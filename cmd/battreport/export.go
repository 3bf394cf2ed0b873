package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/export"
	"github.com/charlie0129/battreport/pkg/report"
)

func NewExportCommand() *cobra.Command {
	var (
		output string
		format string
		remote bool
	)

	cmd := &cobra.Command{
		Use:     "export [report.html]",
		GroupID: gBasic,
		Short:   "Export the battery health data of a battery report",
		Long: `Export the battery health data of a battery report as CSV or JSON.

The output path defaults to the exportPath of the config file. Use '-' to
write to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			encode, err := exportWriter(format)
			if err != nil {
				return err
			}

			var write func(io.Writer) error
			path := reportPath(conf, args)
			if remote && format == "csv" {
				// The daemon applies its own strict setting.
				write, err = remoteCSVWriter(path)
				if err != nil {
					return err
				}
			} else {
				r, err := loadReport(path, remote)
				if err != nil {
					return err
				}
				if err := checkStrict(conf, r); err != nil {
					return err
				}
				write = func(w io.Writer) error { return encode(w, r) }
			}

			dst := output
			if dst == "" {
				dst = conf.ExportPath()
			}
			if dst == "-" {
				return write(cmd.OutOrStdout())
			}

			fp, err := os.Create(dst)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", dst, err)
			}
			defer func() {
				if err := fp.Close(); err != nil {
					logrus.Warnf("failed to close file %s", dst)
				}
			}()

			if err := write(fp); err != nil {
				return fmt.Errorf("failed to export to %s: %w", dst, err)
			}

			logrus.WithFields(logrus.Fields{
				"format": format,
				"output": dst,
			}).Info("report exported")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output path (default: exportPath of the config file)")
	f.StringVarP(&format, "format", "f", "csv", "output format (csv, json)")
	f.BoolVar(&remote, "remote", false, "parse the report through the battreport daemon")

	return cmd
}

// remoteCSVWriter has the daemon convert the report at path to CSV.
func remoteCSVWriter(path string) (func(io.Writer) error, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrDocumentUnreadable, err)
	}
	out, err := newAPIClient().Export(string(b))
	if err != nil {
		return nil, err
	}
	return func(w io.Writer) error {
		_, err := io.WriteString(w, out)
		return err
	}, nil
}

func exportWriter(format string) (func(io.Writer, *report.ParsedReport) error, error) {
	switch format {
	case "csv":
		return export.WriteCSV, nil
	case "json":
		return export.WriteJSON, nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected csv or json", format)
	}
}
