package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sunshare/internal/client"
	"sunshare/internal/models"
)

// NewHostCommand creates the host command, which submits a new listing.
func NewHostCommand(rootOpts *RootOptions) *cobra.Command {
	form := &client.HostForm{}

	cmd := &cobra.Command{
		Use:   "host",
		Short: "List your roof as a new solar project",
		Long: `List your roof as a new solar project.

Blank fields take the server defaults and a missing area is sent as 1000 sq ft.

Example:
  sunshare host --title "Roof A" --location "Denver, CO" --area 2000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rootOpts.client(cmd).SubmitListing(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("failed to submit listing: %w", err)
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), res.Created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listed %s (%s)\n", res.Created.Title, res.Created.ID)
			return writeProperties(cmd.OutOrStdout(), []models.WireProperty{*res.Created})
		},
	}

	cmd.Flags().StringVar(&form.OwnerName, "owner", "", "owner name")
	cmd.Flags().StringVar(&form.Title, "title", "", "project title")
	cmd.Flags().StringVar(&form.Location, "location", "", "project location")
	cmd.Flags().StringVar(&form.AreaSqFt, "area", "", "roof area in square feet")

	return cmd
}
