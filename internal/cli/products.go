package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prodsense/gym/internal/catalog"
)

// NewProductsCmd creates the products command
func NewProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the products, flows, and roles available for practice",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			out := cmd.OutOrStdout()

			for _, p := range cat.Products() {
				fmt.Fprintf(out, "%s %s — %s\n", p.Icon, p.Name, p.Description)
				for _, flow := range p.Flows {
					fmt.Fprintf(out, "  %s\n", flow.Name)
					for _, role := range catalog.Roles() {
						questions, err := cat.Lookup(p.Name, flow.Name, role)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "    %-15s %d questions\n", role, len(questions))
					}
				}
			}
			return nil
		},
	}

	return cmd
}
