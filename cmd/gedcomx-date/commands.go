package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/theory/gedcomx/formal"
	"github.com/theory/gedcomx/internal/view"
	"github.com/theory/gedcomx/types"
)

func (app *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FORMAL...",
		Short: "Print the structure of formal dates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]any, 0, len(args))
			for _, arg := range args {
				date, err := formal.Parse(arg)
				if err != nil {
					return err
				}
				app.log.Debug("parsed formal date", "input", arg, "kind", date.Kind())
				views = append(views, view.New(date))
			}
			return app.encode(cmd.OutOrStdout(), views)
		},
	}
}

func (app *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format FORMAL...",
		Short: "Print formal dates in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				date, err := formal.Parse(arg)
				if err != nil {
					return err
				}
				if canon := date.String(); canon != arg {
					app.log.Info("normalized formal date", "input", arg, "output", canon)
				}
				fmt.Fprintln(cmd.OutOrStdout(), date)
			}
			return nil
		},
	}
}

func (app *app) timestampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timestamp VALUE...",
		Short: "Convert timestamps between milliseconds and xsd:dateTime",
		Long: "Converts each integer number of milliseconds since the Unix epoch " +
			"to xsd:dateTime and each xsd:dateTime to milliseconds.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if ms, err := strconv.ParseInt(arg, 10, 64); err == nil {
					fmt.Fprintln(cmd.OutOrStdout(), types.FromMillis(ms))
					continue
				}

				ts, err := types.Parse(arg)
				if err != nil {
					return err
				}
				if ts.Undetermined() {
					app.log.Warn("timestamp has no time zone, assuming UTC", "input", arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ts.UnixMilli())
			}
			return nil
		},
	}
}

func (app *app) expandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand RECURRING",
		Short: "Print the start instants of a recurring formal date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := formal.Parse(args[0])
			if err != nil {
				return err
			}
			times, err := date.Expand(app.cfg.ExpandLimit)
			if err != nil {
				return err
			}
			app.log.Debug("expanded recurring date", "input", args[0], "instants", len(times))
			for _, tim := range times {
				fmt.Fprintln(cmd.OutOrStdout(), tim.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 0, "maximum number of instants (default from expand_limit)")
	_ = app.v.BindPFlag("expand_limit", cmd.Flags().Lookup("limit"))
	return cmd
}
