package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wastedesk/internal/api"
)

func (c *Console) collectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Manage collection requests",
	}
	cmd.AddCommand(
		c.collectionsListCmd(),
		c.collectionsCreateCmd(),
		c.collectionsAssignCmd(),
		c.collectionsStatusCmd(),
	)
	return cmd
}

func (c *Console) collectionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collection requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			collections, err := c.api.Collections(cmd.Context())
			if err != nil {
				c.log.Errorf("Failed to fetch collections: %v", err)
				return c.sessionError(err)
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tZIP\tCOLLECTOR\tDESCRIPTION")
			for _, collection := range collections {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					collection.ID, collection.Status, collection.ZipCode,
					collection.CollectorID, collection.Description)
			}
			return w.Flush()
		},
	}
}

func (c *Console) collectionsCreateCmd() *cobra.Command {
	var (
		description string
		latitude    float64
		longitude   float64
		zipCode     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a collection request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			created, err := c.api.CreateCollection(cmd.Context(), api.NewCollection{
				Description: description,
				Latitude:    latitude,
				Longitude:   longitude,
				ZipCode:     zipCode,
			})
			if err != nil {
				c.log.Errorf("Failed to create collection: %v", err)
				return c.sessionError(err)
			}
			fmt.Fprintf(c.out, "Created collection %s\n", created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "what is being collected")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "pickup latitude")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "pickup longitude")
	cmd.Flags().StringVar(&zipCode, "zip", "", "pickup zip code")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("zip")
	return cmd
}

func (c *Console) collectionsAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <collection-id> <collector-id>",
		Short: "Assign a collection to a collector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAdmin(); err != nil {
				return err
			}
			assigned, err := c.api.AssignCollection(cmd.Context(), args[0], args[1])
			if err != nil {
				c.log.Errorf("Failed to assign collection %s: %v", args[0], err)
				return c.sessionError(err)
			}
			fmt.Fprintf(c.out, "Collection %s assigned to %s (status %s)\n",
				assigned.ID, assigned.CollectorID, assigned.Status)
			return nil
		},
	}
}

func (c *Console) collectionsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <collection-id> <status>",
		Short: "Transition a collection's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			updated, err := c.api.UpdateCollectionStatus(cmd.Context(), args[0], args[1])
			if err != nil {
				c.log.Errorf("Failed to update collection %s status: %v", args[0], err)
				return c.sessionError(err)
			}
			fmt.Fprintf(c.out, "Collection %s is now %s\n", updated.ID, updated.Status)
			return nil
		},
	}
}
