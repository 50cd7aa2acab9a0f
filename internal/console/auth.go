package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (c *Console) loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Authenticate against the service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if password == "" {
				fmt.Fprint(c.out, "Password: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			if !c.sess.Login(cmd.Context(), email, password) {
				return fmt.Errorf("login failed")
			}

			user := c.sess.User()
			c.log.Infof("Logged in as %s (%s)", user.Email, user.Role)
			fmt.Fprintf(c.out, "Logged in as %s\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func (c *Console) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.sess.Logout()
			fmt.Fprintln(c.out, "Logged out")
			return nil
		},
	}
}

func (c *Console) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user := c.sess.User(); user != nil {
				fmt.Fprintf(c.out, "%s <%s> role=%s\n", user.Username, user.Email, user.Role)
				return nil
			}
			// No resolved profile; fall back to the unverified token hint.
			if hint := c.svc.TokenHint(); hint != nil {
				fmt.Fprintf(c.out, "unresolved session, token claims id=%s role=%s\n", hint.ID, hint.Role)
				return nil
			}
			return ErrNotLoggedIn
		},
	}
}
