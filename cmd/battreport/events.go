package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/events"
)

func NewEventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "events",
		GroupID: gAdvanced,
		Short:   "Print reports parsed by the battreport daemon as they arrive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return newAPIClient().SubscribeEvents(ctx, func(ev events.Event) {
				if ev.Name != events.ReportParsed {
					logrus.WithField("event", ev.Name).Debug("ignoring event")
					return
				}
				payload, err := events.DecodeAs[events.ReportParsedEvent](ev)
				if err != nil {
					logrus.Warnf("failed to decode %s: %v", ev.Name, err)
					return
				}

				status := ""
				if payload.Refused {
					status = " " + color.New(color.Bold, color.FgRed).Sprint("refused")
				}
				cmd.Printf("%s health %s, metrics %s, capacity history %s%s\n",
					time.Unix(payload.Ts, 0).Format(time.Kitchen),
					bold("%s", payload.Health),
					originBadge(payload.MetricsOrigin),
					originBadge(payload.CapacityOrigin),
					status,
				)
			})
		},
	}
}
