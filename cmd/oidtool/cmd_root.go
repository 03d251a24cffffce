// SPDX-License-Identifier: Apache-2.0

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/golang-auth/go-oid"
	"github.com/golang-auth/go-oid/defs"
	"github.com/golang-auth/go-oid/wellknown"
)

const appName = "oidtool"

// app holds the state shared by the sub-commands once the root command has run.
type app struct {
	defsFiles  []string
	configFile string
	wellKnown  bool
	logLevel   string
	logFormat  string

	logger   *slog.Logger
	registry *oid.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Parse and encode ASN.1 object identifiers",
		Long: appName + " parses OBJECT IDENTIFIER values in ASN.1 ({ iso(1) 2 840 }) or dotted (1.2.840)\n" +
			"notation and prints their arcs or DER encoding.  Names defined in the files given with\n" +
			"--defs may be used as the first component of an OID.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&a.defsFiles, "defs", "d", nil, "OID definition file, .asn1 or .yaml (repeatable)")
	flags.BoolVarP(&a.wellKnown, "well-known", "w", false, "preload the PKCS #1 and X9.62 algorithm definitions")
	flags.StringVarP(&a.configFile, "config", "c", "", "TOML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "warn", "logging level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "text", "log output format: text or json")

	rootCmd.AddCommand(newParseCmd(a), newEncodeCmd(a), newListCmd(a))

	return rootCmd
}

// setup merges the configuration file with the command line, then builds the logger and
// loads the well known and user definitions into a fresh registry.  Command line flags win
// over the configuration file; definition files from both are loaded, configuration first.
func (a *app) setup(cmd *cobra.Command) error {
	files := a.defsFiles

	if a.configFile != "" {
		c, err := loadConfig(a.configFile)
		if err != nil {
			return err
		}

		files = append(c.Defs, files...)
		if c.LogLevel != "" && !cmd.Flags().Changed("log-level") {
			a.logLevel = c.LogLevel
		}
		if c.LogFormat != "" && !cmd.Flags().Changed("log-format") {
			a.logFormat = c.LogFormat
		}
		if c.WellKnown && !cmd.Flags().Changed("well-known") {
			a.wellKnown = true
		}
	}

	a.logger = newLogger(a.logLevel, a.logFormat, cmd.ErrOrStderr())
	a.registry = oid.NewRegistry(oid.WithLogger(a.logger))

	if a.wellKnown {
		if err := wellknown.Register(a.registry); err != nil {
			return err
		}
	}

	n, err := defs.LoadFiles(a.registry, files...)
	if err != nil {
		return err
	}
	a.logger.Info("definitions loaded", "files", len(files), "definitions", n)

	return nil
}
