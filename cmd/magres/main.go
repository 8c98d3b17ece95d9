/*
 * main.go, part of gomagres.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// magres analyzes the tensors of solid-state NMR calculations, read from
// magres files in their JSON form.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
	config *Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "magres",
		Short: "Analysis of solid-state NMR tensors in magres files",
		Long: `magres reads magres files (as JSON, optionally compressed with gzip or zstd)
and prints or plots the quantities derived from their tensors: chemical shifts,
quadrupolar couplings and spin-spin couplings, together with periodic
neighbour searches.

Chemical shift references and isotopes can be given in a YAML file
with the --config flag.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zconf := zap.NewProductionConfig()
			if verbose {
				zconf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zconf.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			config, err = LoadConfig(configPath)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	root.AddCommand(
		atomsCmd(),
		withinCmd(),
		msCmd(),
		efgCmd(),
		iscCmd(),
		summaryCmd(),
		plotCmd(),
		findCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
