package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "A templating dotfiles deployer"
	MsgRootLong  = `manage renders your dotfiles packages, applying per-host variable
substitution, and hands the resulting tree to GNU stow for symlinking
into your home directory.`

	MsgBuildShort = "Render packages into the build tree"
	MsgBuildLong  = `Build renders the selected packages (all discoverable packages when
none are named) into the build directory under the dotfiles root.
Template files have their ${NAME} references substituted and the
template suffix stripped; every other file is copied verbatim.`

	MsgStowShort = "Render packages and link them into the target"
	MsgStowLong  = `Stow renders the selected packages into the staging tree, then runs
the external linker once per package to symlink the staged files into
the target directory. Without --apply the linker only previews the
changes it would make.`

	MsgUnstowShort = "Remove the symlinks for staged packages"
	MsgUnstowLong  = `Unstow runs the external linker in delete mode against the staging
tree as it stands. Nothing is re-rendered. Without --apply the linker
only previews the removals.`

	MsgRestowShort = "Remove and recreate symlinks for staged packages"
	MsgRestowLong  = `Restow runs the external linker in delete-then-relink mode against
the staging tree as it stands, pruning links whose staged files are
gone. Nothing is re-rendered; run stow first to refresh content.`

	MsgListShort = "List the packages that deploy for this host"
	MsgListLong  = `List shows every package that would deploy for the active host:
host-specific packages plus the common packages they do not shadow.`

	MsgVarsShort = "Show the effective variable mapping"
	MsgVarsLong  = `Vars prints the merged variable mapping for the active host in
definition order: config/defaults first, with config/<hostname>.conf
overrides applied in place. Useful for debugging template input.`

	MsgInitShort = "Create a new package with a starter template"
	MsgInitLong  = `Init creates a package directory under packages/common (or under the
host tree with --host-specific) seeded with a starter template file.`

	MsgCleanShort = "Remove the derived build tree"
	MsgCleanLong  = `Clean deletes the build directory. Rendering never removes stale
files whose sources are gone, so clean is the way to start fresh.
--staging also deletes the staging tree; use it with care, since
staged files may be live symlink targets.`

	MsgConfigShort = "Show or write the app configuration"
	MsgConfigLong  = `Config prints the effective configuration as TOML. With --write it
creates a fully commented starter config file instead.`

	MsgDocsShort    = "Show the user guide"
	MsgVersionShort = "Print version information"
	MsgHelpShort    = "Help about any command"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagHostname     = "Override the detected hostname"
	MsgFlagFormat       = "Output format: auto, term, text or json"
	MsgFlagApply        = "Perform real changes (default is a dry run)"
	MsgFlagHostSpecific = "Create the package under the host-specific tree"
	MsgFlagCleanStaging = "Also remove the staging tree"
	MsgFlagConfigWrite  = "Write a commented starter config file"

	// Error messages
	MsgErrHostname = "cannot determine hostname (use --hostname): %w"
	MsgErrBuild    = "build failed: %w"
	MsgErrStow     = "stow failed: %w"
	MsgErrUnstow   = "unstow failed: %w"
	MsgErrRestow   = "restow failed: %w"
	MsgErrList     = "failed to list packages: %w"
	MsgErrVars     = "failed to load variables: %w"
	MsgErrInit     = "failed to initialize package: %w"
	MsgErrClean    = "clean failed: %w"
	MsgErrConfig   = "failed to generate config: %w"
)
