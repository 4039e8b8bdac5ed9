package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/nearpair"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "NEARPAIR"

type rootOpts struct {
	configFile string
	logFormat  string
	logLevel   string
	store      storeOpts
}

func newRootCommand() *cobra.Command {
	opts := &rootOpts{}
	vip := viper.New()

	cmd := &cobra.Command{
		Use:           "nearpair",
		Short:         "Find the closest pair of points in point tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindConfig(vip, cmd, opts.configFile)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (yaml, json or toml) supplying flag values")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Diagnostic log format: text or json")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn or error")
	opts.store.addFlags(flags)

	cmd.AddCommand(
		newSolveCommand(opts),
		newGenerateCommand(opts),
	)
	return cmd
}

// bindConfig fills every flag the user did not set from NEARPAIR_* environment
// variables or the config file.
func bindConfig(vip *viper.Viper, cmd *cobra.Command, configFile string) error {
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	if configFile != "" {
		vip.SetConfigFile(configFile)
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !vip.IsSet(f.Name) {
			return
		}
		value := vip.GetString(f.Name)
		if f.Value.Type() == "stringSlice" {
			value = strings.Join(vip.GetStringSlice(f.Name), ",")
		}
		if err := cmd.Flags().Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}
	})
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (o *rootOpts) logger(cmd *cobra.Command) (*nearpair.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", o.logLevel)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch o.logFormat {
	case "text":
		return nearpair.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), handlerOpts)), nil
	case "json":
		return nearpair.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", o.logFormat)
	}
}
