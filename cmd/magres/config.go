/*
 * config.go, part of gomagres.
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
	"os"
	"sort"

	"github.com/rmera/gomagres"
	"github.com/rmera/gomagres/magresjson"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the program:
//
//	references:
//	  H: 31.0
//	  C: 170.0
//	isotopes:
//	  H: 2
type Config struct {
	References map[string]float64 `yaml:"references"`
	Isotopes   map[string]int     `yaml:"isotopes"`
}

// LoadConfig reads the configuration in path. An empty path gives an empty configuration.
func LoadConfig(path string) (*Config, error) {
	c := new(Config)
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// Options returns library options with the references in the configuration.
func (c *Config) Options(logger *zap.Logger) *magres.Options {
	o := magres.DefaultOptions()
	o.Logger(logger)
	for s, r := range c.References {
		o.Reference(s, r)
	}
	return o
}

// ApplyIsotopes sets the configured isotope on every atom of each species.
// Species are processed in alphabetical order. The first failure stops the process.
func (c *Config) ApplyIsotopes(A *magres.Atoms) error {
	species := make([]string, 0, len(c.Isotopes))
	for s := range c.Isotopes {
		species = append(species, s)
	}
	sort.Strings(species)
	for _, s := range species {
		atoms, err := A.Species(s)
		if err != nil {
			//nothing to do for species absent from the structure
			continue
		}
		for _, at := range atoms {
			if err := at.SetIsotope(c.Isotopes[s]); err != nil {
				return fmt.Errorf("config isotopes: %w", err)
			}
		}
	}
	return nil
}

// load reads the magres JSON file name and builds the structure, using
// the configuration.
func load(name string, c *Config, logger *zap.Logger) (*magres.Atoms, error) {
	A, err := magresjson.Load(name, c.Options(logger))
	if err != nil {
		return nil, err
	}
	if err := c.ApplyIsotopes(A); err != nil {
		return nil, err
	}
	logger.Debug("loaded structure", zap.String("file", name), zap.Int("atoms", A.Len()))
	return A, nil
}
