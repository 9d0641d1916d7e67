// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsalab/internal/config"
	"github.com/katalvlaran/dsalab/internal/session"
)

type rootFlags struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "dsalab",
		Short:         "Classical data structures and graph algorithms at a prompt",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.dsalab.yaml)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log every request at debug level")

	root.AddCommand(
		newShellCmd(flags),
		newRunCmd(flags),
		newConfigCmd(flags),
		newVersionCmd(),
	)

	return root
}

// setup loads the config, installs the default slog logger and builds a
// session.
func (f *rootFlags) setup() (*config.Config, *session.Session, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}

	lvl, _ := cfg.SlogLevel()
	if f.debug {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	s, err := session.New(cfg, session.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("session ready",
		"directed", cfg.Graph.Directed,
		"buckets", cfg.HashTable.Buckets,
		"queue_capacity", cfg.Queue.Capacity,
		"sort", cfg.Sort.Algorithm,
	)

	return cfg, s, nil
}

func newShellCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive prompt (type help for commands, quit to leave)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, s, err := flags.setup()
			if err != nil {
				return err
			}
			return s.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), session.ScriptOptions{
				Prompt:    "dsalab> ",
				KeepGoing: true,
			})
		},
	}
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Execute a script of shell commands (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := flags.setup()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			slog.Debug("running script", "path", args[0])
			return s.Run(cmd.Context(), in, cmd.OutOrStdout(), session.ScriptOptions{KeepGoing: keepGoing})
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "report errors and continue with the next line")

	return cmd
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the YAML configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Write(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cfgCmd.AddCommand(initCmd, showCmd)

	return cfgCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dsalab version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
