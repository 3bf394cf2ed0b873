package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/powerinfo"
	"github.com/charlie0129/battreport/pkg/report"
)

func NewLiveCommand() *cobra.Command {
	var (
		asJSON bool
		remote bool
	)

	cmd := &cobra.Command{
		Use:     "live",
		GroupID: gAdvanced,
		Short:   "Show what the operating system reports about the battery right now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				bat *powerinfo.Battery
				err error
			)
			if remote {
				bat, err = newAPIClient().GetLiveBattery()
			} else {
				bat, err = powerinfo.Snapshot()
			}
			if err != nil {
				return fmt.Errorf("failed to get battery info: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(bat)
			}

			printLive(cmd.OutOrStdout(), bat)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&asJSON, "json", false, "print the battery info as JSON")
	f.BoolVar(&remote, "remote", false, "read the battery info through the battreport daemon")

	return cmd
}

func printLive(w io.Writer, bat *powerinfo.Battery) {
	fmt.Fprintln(w, bold("Battery status:"))
	fmt.Fprintf(w, "  State: %s\n", bold("%s", bat.State))
	fmt.Fprintf(w, "  Design Capacity: %s\n", bold("%d mWh", bat.Design))
	fmt.Fprintf(w, "  Full Charge Capacity: %s\n", bold("%d mWh", bat.FullCharge))
	fmt.Fprintf(w, "  Current Charge: %s\n", bold("%d mWh", bat.Current))
	// Positive while charging, negative while discharging.
	fmt.Fprintf(w, "  Charge Rate: %s\n", bold("%+.1f W", float64(bat.ChargeRate)/1000))
	if bat.DesignVoltage > 0 {
		fmt.Fprintf(w, "  Voltage: %s\n", bold("%.2f V", bat.DesignVoltage))
	}
	fmt.Fprintf(w, "  Battery Health: %s\n", bold("%s", report.FormatHealth(bat.Health())))
}
