// Command gedcomx-date parses, formats, and expands GEDCOM X formal dates and
// converts GEDCOM X timestamps between milliseconds and xsd:dateTime.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theory/gedcomx/internal/config"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	app := &app{v: config.New(), log: slog.New(slog.DiscardHandler)}
	root := &cobra.Command{
		Use:               "gedcomx-date",
		Short:             "Parse and format GEDCOM X dates and timestamps",
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .gedcomx-date.yaml)")
	flags.StringP("output", "o", config.OutputYAML, "structured output format: yaml or json")
	flags.String("log-level", "info", "minimum log level: debug, info, warn, or error")
	_ = app.v.BindPFlag("output", flags.Lookup("output"))
	_ = app.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		app.parseCmd(),
		app.formatCmd(),
		app.timestampCmd(),
		app.expandCmd(),
	)
	return root
}

// setup loads the configuration and creates the logger before any
// subcommand runs.
func (app *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(app.v, path)
	if err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	app.log.Debug("loaded configuration", "file", app.v.ConfigFileUsed(), "output", cfg.Output)
	return nil
}

// encode writes each of vals to out in the configured output format.
func (app *app) encode(out io.Writer, vals []any) error {
	if app.cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		for _, val := range vals {
			if err := enc.Encode(val); err != nil {
				return fmt.Errorf("encode JSON: %w", err)
			}
		}
		return nil
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	for _, val := range vals {
		if err := enc.Encode(val); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
	}
	return enc.Close()
}
