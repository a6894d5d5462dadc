package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.webpin.dev/webpin/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <specifier>",
		Short: "Fetch a package through the TTL-based runtime lookup path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Lookup(cmd.Context(), configPath(cmd), args[0])
			if err != nil {
				return err
			}

			if typesOnly, _ := cmd.Flags().GetBool("types"); typesOnly {
				types := http.Header(result.Headers).Get(domain.HeaderTypes)
				if types == "" {
					return fmt.Errorf("no type declarations published for %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), types)
				return nil
			}

			_, err = cmd.OutOrStdout().Write(result.Body)
			return err
		},
	}
	cmd.Flags().Bool("types", false, "Print the package's type-declaration URL instead of its body")
	return cmd
}
