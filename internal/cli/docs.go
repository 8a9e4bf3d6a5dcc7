package cli

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arcaartem/manage-dotfiles/pkg/ui"
)

//go:embed docs/manage.md
var userGuide string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "docs",
		Short:   MsgDocsShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
				fmt.Fprint(cmd.OutOrStdout(), userGuide)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				// Glamour setup failing is no reason to hide the docs.
				fmt.Fprint(cmd.OutOrStdout(), userGuide)
				return nil
			}

			rendered, err := renderer.Render(userGuide)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), userGuide)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
