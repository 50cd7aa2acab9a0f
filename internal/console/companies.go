package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wastedesk/internal/api"
)

func (c *Console) companiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage companies",
	}
	cmd.AddCommand(c.companiesListCmd(), c.companiesCreateCmd(), c.companiesDeleteCmd())
	return cmd
}

func (c *Console) companiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			companies, err := c.api.Companies(cmd.Context())
			if err != nil {
				c.log.Errorf("Failed to fetch companies: %v", err)
				return c.sessionError(err)
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tZIP CODES")
			for _, company := range companies {
				fmt.Fprintf(w, "%s\t%s\t%s\n", company.ID, company.Name, strings.Join(company.ZipCodes, ","))
			}
			return w.Flush()
		},
	}
}

func (c *Console) companiesCreateCmd() *cobra.Command {
	var (
		name        string
		description string
		zipCodes    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAdmin(); err != nil {
				return err
			}
			created, err := c.api.CreateCompany(cmd.Context(), api.NewCompany{
				Name:        name,
				Description: description,
				ZipCodes:    zipCodes,
			})
			if err != nil {
				c.log.Errorf("Failed to create company: %v", err)
				return c.sessionError(err)
			}
			fmt.Fprintf(c.out, "Created company %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "company name")
	cmd.Flags().StringVar(&description, "description", "", "company description")
	cmd.Flags().StringSliceVar(&zipCodes, "zip", nil, "served zip codes")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *Console) companiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAdmin(); err != nil {
				return err
			}
			if err := c.api.DeleteCompany(cmd.Context(), args[0]); err != nil {
				c.log.Errorf("Failed to delete company %s: %v", args[0], err)
				return c.sessionError(err)
			}
			fmt.Fprintf(c.out, "Deleted company %s\n", args[0])
			return nil
		},
	}
}
