package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcaartem/manage-dotfiles/internal/version"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/build"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/clean"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/genconfig"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/initialize"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/list"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/restow"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/stow"
	"github.com/arcaartem/manage-dotfiles/pkg/commands/unstow"
	showvars "github.com/arcaartem/manage-dotfiles/pkg/commands/vars"
)

func newBuildCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "build [packages...]",
		Short:             MsgBuildShort,
		Long:              MsgBuildLong,
		GroupID:           "core",
		ValidArgsFunction: packageNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(flags)
			if err != nil {
				return err
			}

			result, err := build.Build(build.BuildOptions{
				Host:         host,
				PackageNames: args,
			})
			if err != nil {
				return fmt.Errorf(MsgErrBuild, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderBuild(result)
		},
	}
}

func newStowCmd(flags *rootFlags) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:               "stow [packages...]",
		Short:             MsgStowShort,
		Long:              MsgStowLong,
		GroupID:           "core",
		ValidArgsFunction: packageNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(flags)
			if err != nil {
				return err
			}

			result, err := stow.Stow(stow.StowOptions{
				Host:         host,
				PackageNames: args,
				Apply:        apply,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStow, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderStow(result)
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, MsgFlagApply)
	return cmd
}

func newUnstowCmd(flags *rootFlags) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:               "unstow [packages...]",
		Short:             MsgUnstowShort,
		Long:              MsgUnstowLong,
		GroupID:           "core",
		ValidArgsFunction: packageNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(flags)
			if err != nil {
				return err
			}

			result, err := unstow.Unstow(unstow.UnstowOptions{
				Host:         host,
				PackageNames: args,
				Apply:        apply,
			})
			if err != nil {
				return fmt.Errorf(MsgErrUnstow, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderUnstow(result)
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, MsgFlagApply)
	return cmd
}

func newRestowCmd(flags *rootFlags) *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:               "restow [packages...]",
		Short:             MsgRestowShort,
		Long:              MsgRestowLong,
		GroupID:           "core",
		ValidArgsFunction: packageNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(flags)
			if err != nil {
				return err
			}

			result, err := restow.Restow(restow.RestowOptions{
				Host:         host,
				PackageNames: args,
				Apply:        apply,
			})
			if err != nil {
				return fmt.Errorf(MsgErrRestow, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderRestow(result)
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, MsgFlagApply)
	return cmd
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(flags)
			if err != nil {
				return err
			}

			result, err := list.ListPackages(list.ListPackagesOptions{Host: host})
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderList(result)
		},
	}
}

func newVarsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "vars",
		Short:   MsgVarsShort,
		Long:    MsgVarsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(flags)
			if err != nil {
				return err
			}

			result, err := showvars.ShowVars(showvars.ShowVarsOptions{Host: host})
			if err != nil {
				return fmt.Errorf(MsgErrVars, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderVars(result)
		},
	}
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	var hostSpecific bool

	cmd := &cobra.Command{
		Use:     "init PACKAGE",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := resolveHost(flags)
			if err != nil {
				return err
			}

			result, err := initialize.InitPackage(initialize.InitPackageOptions{
				Host:         host,
				PackageName:  args[0],
				HostSpecific: hostSpecific,
			})
			if err != nil {
				return fmt.Errorf(MsgErrInit, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderInit(result)
		},
	}

	cmd.Flags().BoolVar(&hostSpecific, "host-specific", false, MsgFlagHostSpecific)
	return cmd
}

func newCleanCmd(flags *rootFlags) *cobra.Command {
	var staging bool

	cmd := &cobra.Command{
		Use:     "clean",
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := clean.Clean(clean.CleanOptions{Staging: staging})
			if err != nil {
				return fmt.Errorf(MsgErrClean, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderClean(result)
		},
	}

	cmd.Flags().BoolVar(&staging, "staging", false, MsgFlagCleanStaging)
	return cmd
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{Write: write})
			if err != nil {
				return fmt.Errorf(MsgErrConfig, err)
			}

			renderer, err := newRenderer(cmd, flags)
			if err != nil {
				return err
			}
			return renderer.RenderGenConfig(result)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagConfigWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "manage version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
