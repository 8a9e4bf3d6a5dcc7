// Package cli wires the manage command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arcaartem/manage-dotfiles/internal/version"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/list"
	"github.com/arcaartem/manage-dotfiles/pkg/display"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
	"github.com/arcaartem/manage-dotfiles/pkg/ui"
)

// rootFlags carries the persistent flag values shared by every command.
type rootFlags struct {
	verbosity int
	hostname  string
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "manage",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given. Show help but exit non-zero so
			// scripts never mistake a bare invocation for success.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.hostname, "hostname", "H", "", MsgFlagHostname)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "auto", MsgFlagFormat)

	// The help command carries the same quirk as the bare invocation:
	// usage goes out, the exit code stays non-zero.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:     "help [command]",
		Short:   MsgHelpShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := cmd.Root()
			if len(args) > 0 {
				found, _, err := cmd.Root().Find(args)
				if err == nil && found != nil {
					target = found
				}
			}
			_ = target.Help()
			return fmt.Errorf("help requested")
		},
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newBuildCmd(flags))
	rootCmd.AddCommand(newStowCmd(flags))
	rootCmd.AddCommand(newUnstowCmd(flags))
	rootCmd.AddCommand(newRestowCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newVarsCmd(flags))
	rootCmd.AddCommand(newInitCmd(flags))
	rootCmd.AddCommand(newCleanCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// resolveHost captures the host identity once per run: the -H override
// when given, otherwise the system hostname, plus an environment
// snapshot. Everything below the command layer receives this struct
// instead of reading ambient state.
func resolveHost(flags *rootFlags) (types.Host, error) {
	name := flags.hostname
	if name == "" {
		detected, err := os.Hostname()
		if err != nil {
			return types.Host{}, fmt.Errorf(MsgErrHostname, err)
		}
		name = detected
	}
	return types.NewHost(name, os.Environ()), nil
}

// newRenderer builds the result renderer for a command, resolving the
// auto format against stdout.
func newRenderer(cmd *cobra.Command, flags *rootFlags) (*display.Renderer, error) {
	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return nil, err
	}
	if format == ui.FormatAuto {
		format = ui.DetectFormat(os.Stdout)
	}
	return display.New(cmd.OutOrStdout(), format), nil
}

// packageNamesCompletion provides shell completion for package names.
func packageNamesCompletion(flags *rootFlags) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		host, err := resolveHost(flags)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		result, err := list.ListPackages(list.ListPackagesOptions{Host: host})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, pkg := range result.Packages {
			taken := false
			for _, arg := range args {
				if arg == pkg.Name {
					taken = true
					break
				}
			}
			if !taken {
				names = append(names, pkg.Name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
