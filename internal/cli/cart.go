package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sunshare/internal/cart"
	"sunshare/internal/models"
)

// CartOptions holds flags for the cart command.
type CartOptions struct {
	*RootOptions
	Add      []string
	Remove   []string
	Checkout bool
}

// NewCartCommand creates the cart command. The cart only lives for the
// duration of the command.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Build a cart from listings and show its total",
		Long: `Build a cart from listings and show its total.

Example:
  sunshare cart --add mock-1 --add mock-1:3 --add mock-2 --remove mock-2 --checkout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings := opts.client(cmd).FetchProperties(cmd.Context())
			if listings.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", listings.Warning)
			}

			c, err := buildCart(listings.Properties, opts.Add, opts.Remove)
			if err != nil {
				return err
			}

			summary := c.Checkout()
			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			if err := writeCart(cmd.OutOrStdout(), summary); err != nil {
				return err
			}
			if opts.Checkout {
				fmt.Fprintln(cmd.OutOrStdout(), "Checkout is a simulation: nothing was charged.")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&opts.Add, "add", nil, "add a listing as id[:qty] (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Remove, "remove", nil, "remove a listing by id (repeatable)")
	cmd.Flags().BoolVar(&opts.Checkout, "checkout", false, "show the checkout summary")

	return cmd
}

func buildCart(props []models.WireProperty, adds, removes []string) (*cart.Cart, error) {
	byID := make(map[string]models.WireProperty, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}

	c := cart.New()
	for _, spec := range adds {
		id, qty, err := parseAdd(spec)
		if err != nil {
			return nil, err
		}
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown listing %q", id)
		}
		c.Add(p, qty)
	}
	for _, id := range removes {
		c.Remove(id)
	}
	return c, nil
}

func parseAdd(spec string) (string, int, error) {
	id, qtyStr, found := strings.Cut(spec, ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", 0, fmt.Errorf("invalid --add %q: missing id", spec)
	}
	if !found {
		return id, 1, nil
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
	if err != nil || qty < 1 {
		return "", 0, fmt.Errorf("invalid --add %q: quantity must be a positive integer", spec)
	}
	return id, qty, nil
}
