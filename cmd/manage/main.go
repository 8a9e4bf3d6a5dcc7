package main

import (
	"fmt"
	"os"

	"github.com/arcaartem/manage-dotfiles/internal/cli"
	"github.com/arcaartem/manage-dotfiles/pkg/output/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.Get("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
