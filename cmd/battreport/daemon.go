package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/daemon"
	"github.com/charlie0129/battreport/pkg/version"
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "daemon",
		Short:   "Run battreport daemon in the foreground",
		GroupID: gAdvanced,
		Long: `Run battreport daemon in the foreground.

The daemon parses and exports reports sent to its unix socket and serves
Prometheus metrics on /metrics. Send SIGHUP to reload the config file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("battreport daemon starting")
			return daemon.Run(configPath, unixSocketPath)
		},
	}
}
