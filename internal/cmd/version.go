package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrick-goecommerce/paneforge/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the paneforge version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("paneforge v%s (%s)\n", version.Version, version.GitRef)
			return nil
		},
	}
}
