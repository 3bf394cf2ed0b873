package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
			if !remote {
				return
			}

			daemonVersion, err := newAPIClient().GetVersion()
			if err != nil {
				logrus.Warnf("failed to get daemon version: %v", err)
				return
			}
			if daemonVersion != version.Version {
				logrus.WithFields(logrus.Fields{
					"clientVersion": version.Version,
					"daemonVersion": daemonVersion,
				}).Warn("Version mismatch between client and daemon.")
			}
			cmd.Printf("daemon %s\n", daemonVersion)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "also print the version of the battreport daemon")

	return cmd
}
