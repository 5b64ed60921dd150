// Copyright 2025 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thediveo/confspec"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

const (
	envFlag     = "env"
	formatFlag  = "format"
	outputFlag  = "output"
	debugFlag   = "debug"
	formatsFlag = "formats"
)

// settings supply the flag defaults from the environment.
type settings struct {
	Output string `env:"CONFSPEC_OUTPUT" envDefault:"yaml"`
	Debug  bool   `env:"CONFSPEC_DEBUG"`
}

func buildInfo(info *debug.BuildInfo, key string) string {
	idx := slices.IndexFunc(info.Settings,
		func(setting debug.BuildSetting) bool {
			return setting.Key == key
		})
	if idx < 0 {
		return ""
	}
	return info.Settings[idx].Value
}

func newRootCmd() (rootCmd *cobra.Command, err error) {
	var defaults settings
	if err := env.Parse(&defaults); err != nil {
		return nil, fmt.Errorf("invalid settings, reason: %w", err)
	}

	rootCmd = &cobra.Command{
		Use:   "confspec [flags] FILE",
		Short: "confspec loads, merges, and interpolates configuration files",
		Long: `confspec loads a JSON, YAML, or TOML configuration file, merges an optional
environment overlay file on top of it, interpolates environment variable
references, and prints the result. Use "-" as FILE to read from stdin,
together with --format.`,
		Version: "(devel)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool(debugFlag); debug {
				log.SetLevel(log.DebugLevel)
			}
			if listFormats, _ := cmd.Flags().GetBool(formatsFlag); listFormats {
				for _, format := range confspec.DefaultRegistry.Formats() {
					fmt.Fprintln(cmd.OutOrStdout(), format)
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("missing configuration FILE")
			}

			tree, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			output, _ := cmd.Flags().GetString(outputFlag)
			return write(cmd.OutOrStdout(), tree, output)
		},
	}
	rootCmd.Flags().StringP(envFlag, "e", "",
		"environment overlay name, defaults to $"+confspec.EnvVar)
	rootCmd.Flags().StringP(formatFlag, "f", "",
		"format of configuration read from stdin")
	rootCmd.Flags().StringP(outputFlag, "o", defaults.Output,
		"output format, either json or yaml")
	rootCmd.Flags().Bool(debugFlag, defaults.Debug,
		"enable debug logging")
	rootCmd.Flags().Bool(formatsFlag, false,
		"list supported configuration formats and exit")

	if info, biok := debug.ReadBuildInfo(); biok {
		commit := buildInfo(info, "vcs.revision")
		if commit != "" {
			modified := ""
			if buildInfo(info, "vcs.modified") == "true" {
				modified = " (modified)"
			}
			rootCmd.Version = fmt.Sprintf("commit %s%s", commit[:8], modified)
		} else if modver := info.Main.Version; modver != "" {
			rootCmd.Version = modver
		}
	}

	return rootCmd, nil
}

// load the configuration either from the named file or from stdin.
func load(cmd *cobra.Command, path string) (any, error) {
	envName, _ := cmd.Flags().GetString(envFlag)
	if path != "-" {
		log.Info(fmt.Sprintf("📄  loading %q", path))
		return confspec.Load(path, confspec.WithEnv(envName))
	}
	format, _ := cmd.Flags().GetString(formatFlag)
	if format == "" {
		return nil, errors.New("reading from stdin requires --" + formatFlag)
	}
	log.Info(fmt.Sprintf("📄  loading %s from stdin", format))
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("cannot read stdin, reason: %w", err)
	}
	return confspec.Loads(data, format)
}

// write the configuration tree in the specified output format.
func write(w io.Writer, tree any, output string) error {
	var b []byte
	var err error
	switch output {
	case "json":
		b, err = json.MarshalIndent(tree, "", "  ")
		b = append(b, '\n')
	case "yaml", "yml":
		b, err = yaml.Marshal(tree)
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}
	if err != nil {
		return fmt.Errorf("cannot render configuration, reason: %w", err)
	}
	_, err = w.Write(b)
	return err
}
