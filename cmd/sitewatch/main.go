package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dshills/sitewatch/internal/logging"
	"github.com/m-mizutani/ctxlog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "sitewatch",
		Short:         "Classify, filter and sort website monitoring issues",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(flagOrEnv(cmd, "log-level", f.logLevel, "SITEWATCH_LOG_LEVEL"))
			if err != nil {
				return exitError(3, "%v", err)
			}
			format, err := logging.ParseFormat(flagOrEnv(cmd, "log-format", f.logFormat, "SITEWATCH_LOG_FORMAT"))
			if err != nil {
				return exitError(3, "%v", err)
			}
			logger := logging.New(level, cmd.ErrOrStderr(), format)
			cmd.SetContext(ctxlog.With(cmd.Context(), logger))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, or error (env SITEWATCH_LOG_LEVEL)")
	flags.StringVar(&f.logFormat, "log-format", "auto", "Log format: console, json, or auto (env SITEWATCH_LOG_FORMAT)")

	root.AddCommand(newViewCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newDashboardsCmd())
	return root
}

// flagOrEnv prefers an explicitly set flag, then the environment, then the
// flag default.
func flagOrEnv(cmd *cobra.Command, name, value, env string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return value
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
