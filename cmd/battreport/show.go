package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/export"
	"github.com/charlie0129/battreport/pkg/powerinfo"
	"github.com/charlie0129/battreport/pkg/report"
)

func NewShowCommand() *cobra.Command {
	var (
		asJSON      bool
		remote      bool
		compareLive bool
	)

	cmd := &cobra.Command{
		Use:     "show [report.html]",
		GroupID: gBasic,
		Short:   "Show the battery health data of a battery report",
		Long: `Show the battery health data of a battery report.

The report path defaults to the reportPath of the config file. Values that
were not found in the report are marked as placeholders.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			r, err := loadReport(reportPath(conf, args), remote)
			if err != nil {
				return err
			}
			if err := checkStrict(conf, r); err != nil {
				return err
			}

			if asJSON {
				return export.WriteJSON(cmd.OutOrStdout(), r)
			}

			printReport(cmd.OutOrStdout(), r)

			if compareLive {
				bat, err := powerinfo.Snapshot()
				if err != nil {
					logrus.Warnf("failed to read live battery info: %v", err)
					return nil
				}
				printLiveComparison(cmd.OutOrStdout(), r, bat)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	f.BoolVar(&remote, "remote", false, "parse the report through the battreport daemon")
	f.BoolVar(&compareLive, "compare-live", false, "compare with the capacity the operating system reports now")

	return cmd
}

func printReport(w io.Writer, r *report.ParsedReport) {
	fmt.Fprintf(w, "%s %s\n", bold("Battery metrics:"), originBadge(r.MetricsOrigin))
	for _, name := range report.MetricNames {
		if v, ok := r.Metrics[name]; ok {
			fmt.Fprintf(w, "  %s: %s\n", name, bold("%s", v))
		}
	}

	if len(r.Details) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bold("Details:"))
		for _, d := range r.Details {
			fmt.Fprintf(w, "  %s: %s\n", d.Label, d.Value)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, bold("Recent usage:"))
	if len(r.UsageHistory.Entries) == 0 {
		fmt.Fprintln(w, "  no usage history in report")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "  %s\n", strings.Join(r.UsageHistory.Columns, "\t"))
		for _, e := range r.UsageHistory.Entries {
			values := make([]string, len(r.UsageHistory.Columns))
			for i, col := range r.UsageHistory.Columns {
				values[i], _ = e.Get(col)
			}
			fmt.Fprintf(tw, "  %s\n", strings.Join(values, "\t"))
		}
		_ = tw.Flush()
	}

	h := r.CapacityHistory
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", bold("Capacity history:"), originBadge(h.Origin))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  Period\tFull Charge (mWh)\tDesign (mWh)\tHealth")
	for i := 0; i < h.Len(); i++ {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%s\n", h.Periods[i], h.FullCharge[i], h.Design[i],
			report.FormatHealth(report.HealthOf(h.FullCharge[i], h.Design[i])))
	}
	_ = tw.Flush()
}

func printLiveComparison(w io.Writer, r *report.ParsedReport, bat *powerinfo.Battery) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, bold("Live battery:"))
	fmt.Fprintf(w, "  Full Charge Capacity: %s\n", bold("%d mWh", bat.FullCharge))
	fmt.Fprintf(w, "  Design Capacity: %s\n", bold("%d mWh", bat.Design))
	fmt.Fprintf(w, "  Battery Health: %s (report: %s)\n",
		bold("%s", report.FormatHealth(bat.Health())), r.Metrics[report.BatteryHealth])
}
