package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/generate"
)

func NewGenerateCommand() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:     "generate [output.html]",
		GroupID: gBasic,
		Short:   "Generate a battery report with powercfg (Windows only)",
		Long: `Generate a battery report with 'powercfg /batteryreport'.

The output path defaults to the reportPath of the config file. The command is
cancelled after generateTimeoutSeconds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			path := reportPath(conf, args)
			ctx, cancel := context.WithTimeout(cmd.Context(), conf.GenerateTimeout())
			defer cancel()

			logrus.WithFields(logrus.Fields{
				"output":  path,
				"timeout": conf.GenerateTimeout().String(),
			}).Debug("generating battery report")

			if err := generate.Generate(ctx, path); err != nil {
				return err
			}
			cmd.Printf("Battery report saved to %s\n", bold("%s", path))

			if !show {
				return nil
			}

			r, err := loadReport(path, false)
			if err != nil {
				return err
			}
			if err := checkStrict(conf, r); err != nil {
				return err
			}
			cmd.Println()
			printReport(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "show the generated report")

	return cmd
}
