/*
 * commands.go, part of gomagres.
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

package main

import (
	"fmt"
	"strconv"

	"github.com/rmera/gomagres"
	"github.com/rmera/gomagres/histo"
	"github.com/rmera/gomagres/magresplot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// opt formats v, or "-" when there is no value.
func opt(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func optErr(v float64, err error) string {
	return opt(v, err == nil)
}

func atomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "atoms FILE",
		Short: "List the atoms and the lattice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := load(args[0], config, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if L, err := A.Lattice(); err == nil {
				for i := 0; i < 3; i++ {
					v := L.Vec(i)
					fmt.Fprintf(out, "lattice %10.5f %10.5f %10.5f\n", v[0], v[1], v[2])
				}
			}
			for _, at := range A.All() {
				p := at.Position().Vec(0)
				g, ok := at.Gamma()
				fmt.Fprintf(out, "%-14s %10.5f %10.5f %10.5f gamma %s\n", at, p[0], p[1], p[2], opt(g, ok))
			}
			return nil
		},
	}
}

func withinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "within FILE LABEL N RADIUS",
		Short: "List the closest periodic images of the atoms within RADIUS of the Nth atom with LABEL",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid atom number %q: %w", args[2], err)
			}
			radius, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid radius %q: %w", args[3], err)
			}
			A, err := load(args[0], config, logger)
			if err != nil {
				return err
			}
			center, err := A.GetLabel(args[1], n)
			if err != nil {
				return err
			}
			imgs, err := A.WithinAtom(center, radius)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, im := range imgs {
				p := im.Position().Vec(0)
				fmt.Fprintf(out, "%-14s %10.5f %10.5f %10.5f %8.4f\n", im, p[0], p[1], p[2], im.Dist(center))
			}
			return nil
		},
	}
}

func msCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ms FILE",
		Short: "Print the magnetic shielding of each atom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := load(args[0], config, logger)
			if err != nil {
				return err
			}
			if !A.Has(magres.KindMS) {
				return fmt.Errorf("%s: no magnetic shielding data", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s %10s %10s %10s %10s\n", "atom", "sigma_iso", "shift", "aniso", "eta")
			for _, ms := range A.MS(magres.KindMS) {
				fmt.Fprintf(out, "%-14s %10.4f %10.4f %10.4f %10s\n", ms.Atom(), ms.SigmaIso(), ms.Iso(), ms.Aniso(), optErr(ms.Eta()))
			}
			return nil
		},
	}
}

func kindFlag(cmd *cobra.Command, kind *string, def string) {
	cmd.Flags().StringVarP(kind, "kind", "k", def, "calculation kind")
}

func parseKind(s string, family func(magres.Kind) bool) (magres.Kind, error) {
	k, err := magres.ParseKind(s)
	if err != nil {
		return k, err
	}
	if !family(k) {
		return k, fmt.Errorf("kind %s not valid for this command", k)
	}
	return k, nil
}

func efgCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "efg FILE",
		Short: "Print the electric field gradient analysis of each atom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind, magres.Kind.IsEFG)
			if err != nil {
				return err
			}
			A, err := load(args[0], config, logger)
			if err != nil {
				return err
			}
			if !A.Has(k) {
				return fmt.Errorf("%s: no %s data", args[0], k)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s %10s %10s %10s %10s\n", "atom", "Vzz", "Cq(MHz)", "eta_Q", "Pq(MHz)")
			for _, efg := range A.EFG(k) {
				fmt.Fprintf(out, "%-14s %10.4f %10s %10s %10s\n", efg.Atom(), efg.Vzz(), opt(efg.Cq()), optErr(efg.EtaQ()), opt(efg.Pq()))
			}
			return nil
		},
	}
	kindFlag(cmd, &kind, magres.KindEFG.String())
	return cmd
}

func iscCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "isc FILE",
		Short: "Print the indirect spin-spin couplings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind, magres.Kind.IsISC)
			if err != nil {
				return err
			}
			A, err := load(args[0], config, logger)
			if err != nil {
				return err
			}
			if !A.Has(k) {
				return fmt.Errorf("%s: no %s data", args[0], k)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-30s %8s %10s %10s %10s %10s\n", "pair", "dist", "K_iso", "J_iso(Hz)", "J_aniso", "J_eta")
			for _, isc := range A.ISC(k) {
				fmt.Fprintf(out, "%-30s %8.4f %10.4f %10s %10s %10s\n", isc.Symbol(), isc.Dist(), isc.KIso(),
					optErr(isc.JIso()), optErr(isc.JAniso()), optErr(isc.JEta()))
			}
			return nil
		},
	}
	kindFlag(cmd, &kind, magres.KindISC.String())
	return cmd
}

type stats struct {
	n                   int
	mean, std, min, max float64
}

func describe(v []float64) stats {
	s := stats{n: len(v), mean: stat.Mean(v, nil), min: floats.Min(v), max: floats.Max(v)}
	if len(v) > 1 {
		s.std = stat.StdDev(v, nil)
	}
	return s
}

// printSeries prints statistics for each series and, if bins is positive,
// its histogram, normalized if norm is true.
func printSeries(cmd *cobra.Command, title string, series []magresplot.Series, bins int, norm bool) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n%-8s %5s %10s %10s %10s %10s\n", title, "species", "n", "mean", "std", "min", "max")
	for _, s := range series {
		d := describe(s.Values)
		fmt.Fprintf(out, "%-8s %5d %10.4f %10.4f %10.4f %10.4f\n", s.Name, d.n, d.mean, d.std, d.min, d.max)
	}
	if bins <= 0 {
		return nil
	}
	for _, s := range series {
		d := describe(s.Values)
		h, err := histo.NewData(s.Name, histo.Dividers(d.min, d.max, bins), s.Values)
		if err != nil {
			return err
		}
		if norm {
			h.Normalize()
		}
		fmt.Fprint(out, h)
	}
	return nil
}

func summaryCmd() *cobra.Command {
	var bins int
	var norm bool
	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Print statistics of the chemical shifts and Cq per species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := load(args[0], config, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d atoms\n", A.Len())
			if A.Has(magres.KindMS) {
				if err := printSeries(cmd, "Isotropic chemical shift (ppm)", magresplot.MSSeries(A), bins, norm); err != nil {
					return err
				}
			}
			if A.Has(magres.KindEFG) {
				if err := printSeries(cmd, "Cq (MHz)", magresplot.CqSeries(A, magres.KindEFG), bins, norm); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 0, "if positive, also print a histogram per species with this many bins")
	cmd.Flags().BoolVar(&norm, "normalize", false, "print the histograms as fractions of the points of each species")
	return cmd
}

func plotCmd() *cobra.Command {
	var what, style, outname string
	var fwhm float64
	var bins int
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Plot chemical shifts or Cq values to a png file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			A, err := load(args[0], config, logger)
			if err != nil {
				return err
			}
			var series []magresplot.Series
			var xlabel string
			inverted := false
			switch what {
			case "ms":
				series = magresplot.MSSeries(A)
				xlabel = "Chemical shift (ppm)"
				inverted = true
			case "cq":
				series = magresplot.CqSeries(A, magres.KindEFG)
				xlabel = "Cq (MHz)"
			default:
				return fmt.Errorf("unknown quantity %q, use ms or cq", what)
			}
			switch style {
			case "sticks":
				err = magresplot.Sticks(series, inverted, args[0], xlabel, outname)
			case "spectrum":
				err = magresplot.Spectrum(series, fwhm, 1000, inverted, args[0], xlabel, outname)
			case "hist":
				all := make([]float64, 0, A.Len())
				for _, s := range series {
					all = append(all, s.Values...)
				}
				err = magresplot.Histogram(all, bins, args[0], xlabel, outname)
			default:
				return fmt.Errorf("unknown plot type %q, use sticks, spectrum or hist", style)
			}
			if err != nil {
				return err
			}
			logger.Info("plot written", zap.String("file", outname+".png"))
			return nil
		},
	}
	cmd.Flags().StringVar(&what, "what", "ms", "quantity to plot: ms or cq")
	cmd.Flags().StringVar(&style, "type", "sticks", "plot type: sticks, spectrum or hist")
	cmd.Flags().StringVarP(&outname, "out", "o", "magres", "output file name, without the .png extension")
	cmd.Flags().Float64Var(&fwhm, "fwhm", 1, "line width for spectra")
	cmd.Flags().IntVar(&bins, "bins", 20, "number of bins for histograms")
	return cmd
}

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find DIR",
		Short: "List the magres files under DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := magres.FindAll(args[0])
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
