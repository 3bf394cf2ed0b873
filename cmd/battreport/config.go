package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/charlie0129/battreport/pkg/client"
	"github.com/charlie0129/battreport/pkg/config"
)

// configKeys are the keys accepted by 'config set', in display order.
var configKeys = []string{"reportPath", "exportPath", "generateTimeoutSeconds", "strict"}

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: gAdvanced,
		Short:   "Show or change the configuration",
	}

	cmd.AddCommand(
		newConfigShowCommand(),
		newConfigSetCommand(),
	)

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var raw *config.RawFileConfig
			if remote {
				var err error
				raw, err = newAPIClient().GetConfig()
				if err != nil {
					return err
				}
			} else {
				conf, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				raw, err = config.NewRawFileConfigFromConfig(conf)
				if err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(raw)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "print the configuration of the battreport daemon")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration key and save it",
		Long: `Change one configuration key and save it.

Keys: ` + strings.Join(configKeys, ", ") + `.

Without '--remote' the config file given by '--config' is edited. With
'--remote' the daemon changes and saves its own config file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			if remote {
				ret, err := setRemoteConfig(newAPIClient(), key, value)
				if err != nil {
					return fmt.Errorf("failed to set %s: %w", key, err)
				}
				if ret != "" {
					logrus.Infof("daemon responded: %s", ret)
				}
			} else {
				conf, err := loadConfig()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				if err := setConfig(conf, key, value); err != nil {
					return fmt.Errorf("failed to set %s: %w", key, err)
				}
				if err := conf.Save(); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
			}

			logrus.Infof("successfully set %s to %s", key, value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "change the configuration of the battreport daemon")

	return cmd
}

func parseTimeout(value string) (time.Duration, error) {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number of seconds", value)
	}
	if seconds < 1 {
		return 0, fmt.Errorf("generate timeout must be at least one second, got %d", seconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown key %q, expected one of %s", key, strings.Join(configKeys, ", "))
}

func setConfig(conf config.Config, key, value string) error {
	switch key {
	case "reportPath":
		if value == "" {
			return fmt.Errorf("path must not be empty")
		}
		conf.SetReportPath(value)
	case "exportPath":
		if value == "" {
			return fmt.Errorf("path must not be empty")
		}
		conf.SetExportPath(value)
	case "generateTimeoutSeconds":
		d, err := parseTimeout(value)
		if err != nil {
			return err
		}
		conf.SetGenerateTimeout(d)
	case "strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%q is not a boolean", value)
		}
		conf.SetStrict(b)
	default:
		return unknownKey(key)
	}
	return nil
}

func setRemoteConfig(c *client.Client, key, value string) (string, error) {
	switch key {
	case "reportPath":
		return c.SetReportPath(value)
	case "exportPath":
		return c.SetExportPath(value)
	case "generateTimeoutSeconds":
		d, err := parseTimeout(value)
		if err != nil {
			return "", err
		}
		return c.SetGenerateTimeout(d)
	case "strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("%q is not a boolean", value)
		}
		return c.SetStrict(b)
	default:
		return "", unknownKey(key)
	}
}
