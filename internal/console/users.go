package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wastedesk/internal/api"
	"wastedesk/internal/models"
)

// User management is admin-only end to end, matching the web console where
// the users view is hidden from every other role.
func (c *Console) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users (admin only)",
	}
	cmd.AddCommand(c.usersListCmd(), c.usersCreateCmd(), c.usersDeleteCmd())
	return cmd
}

func (c *Console) usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAdmin(); err != nil {
				return err
			}
			users, err := c.api.Users(cmd.Context())
			if err != nil {
				c.log.Errorf("Failed to fetch users: %v", err)
				return c.sessionError(err)
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE")
			for _, user := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", user.ID, user.Username, user.Email, user.Role)
			}
			return w.Flush()
		},
	}
}

func (c *Console) usersCreateCmd() *cobra.Command {
	var (
		username string
		email    string
		password string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAdmin(); err != nil {
				return err
			}
			created, err := c.api.CreateUser(cmd.Context(), api.NewUser{
				Username: username,
				Email:    email,
				Password: password,
				Role:     models.Role(role),
			})
			if err != nil {
				c.log.Errorf("Failed to create user: %v", err)
				return c.sessionError(err)
			}
			fmt.Fprintf(c.out, "Created user %s (%s)\n", created.Username, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&role, "role", string(models.RoleRegular), "role (admin, collector, regular)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *Console) usersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireAdmin(); err != nil {
				return err
			}
			if err := c.api.DeleteUser(cmd.Context(), args[0]); err != nil {
				c.log.Errorf("Failed to delete user %s: %v", args[0], err)
				return c.sessionError(err)
			}
			fmt.Fprintf(c.out, "Deleted user %s\n", args[0])
			return nil
		},
	}
}
