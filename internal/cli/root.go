package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"sunshare/internal/client"
	"sunshare/internal/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL  string
	Format  string // "json" | "text"
	Verbose bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the SunShare CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sunshare",
		Short: "SunShare - browse and list solar investments",
		Long:  "Command line client for the SunShare marketplace API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", "http://localhost:5000", "SunShare API base URL")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewHostCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))

	return cmd
}

func (o *RootOptions) client(cmd *cobra.Command) *client.Client {
	log := logger.Discard()
	if o.Verbose {
		log = logger.New(logger.Config{Writer: cmd.ErrOrStderr(), Level: slog.LevelDebug})
	}
	return client.New(o.APIURL, log)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
