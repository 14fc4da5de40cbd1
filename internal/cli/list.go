package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List property listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings := rootOpts.client(cmd).FetchProperties(cmd.Context())
			if listings.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", listings.Warning)
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), listings.Properties)
			}
			return writeProperties(cmd.OutOrStdout(), listings.Properties)
		},
	}
}
