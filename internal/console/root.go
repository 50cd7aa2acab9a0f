// Package console is the terminal surface of the admin console: one cobra
// command per view, all reading session state from the shared session
// context.
package console

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wastedesk/internal/api"
	"wastedesk/internal/dashboard"
	"wastedesk/internal/session"
)

var (
	ErrNotLoggedIn = errors.New("not logged in, run \"wastedesk login\" first")
	ErrAdminOnly   = errors.New("this command requires the admin role")
)

type Console struct {
	sess *session.Context
	svc  session.Service
	api  *api.Client
	agg  *dashboard.Aggregator
	log  *logrus.Logger
	out  io.Writer
}

func New(sess *session.Context, svc session.Service, apiClient *api.Client, agg *dashboard.Aggregator, log *logrus.Logger) *Console {
	return &Console{
		sess: sess,
		svc:  svc,
		api:  apiClient,
		agg:  agg,
		log:  log,
		out:  os.Stdout,
	}
}

// Root builds the command tree. The session context is initialized before
// any command body runs, so commands never observe a loading session.
func (c *Console) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "wastedesk",
		Short:         "Admin console for the waste-collection service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.sess.Init(cmd.Context())
		},
	}

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.dashboardCmd(),
		c.companiesCmd(),
		c.usersCmd(),
		c.collectionsCmd(),
	)
	return root
}

// sessionError inspects an API error on the way out of a command. A
// rejection of our bearer token means the session is no longer usable and
// the local state is discarded.
func (c *Console) sessionError(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		c.log.Warn("Session no longer accepted by the server, logging out")
		c.sess.Logout()
	}
	return err
}

// requireSession guards commands that need an established session.
func (c *Console) requireSession() error {
	if !c.sess.Established() {
		return ErrNotLoggedIn
	}
	return nil
}

// requireAdmin guards admin-only commands, the way the web console hides
// admin-only navigation entries.
func (c *Console) requireAdmin() error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if !c.sess.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}
