package console

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"wastedesk/internal/models"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Margin(0, 1).
			Align(lipgloss.Center)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	cardValueStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("10"))
)

func (c *Console) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show summary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			stats, err := c.agg.Stats(cmd.Context())
			if err != nil {
				// Degrade to the zero state rather than failing the view.
				c.log.Warnf("Dashboard data unavailable, showing zero state: %v", err)
				_ = c.sessionError(err)
				stats = models.DashboardStats{}
			}

			if user := c.sess.User(); user != nil {
				name := user.Name
				if name == "" {
					name = user.Email
				}
				fmt.Fprintf(c.out, "Welcome, %s!\n\n", name)
			}
			fmt.Fprintln(c.out, renderStats(stats))
			return nil
		},
	}
}

func renderStats(stats models.DashboardStats) string {
	cards := []string{
		statCard("Companies", stats.Companies),
		statCard("Users", stats.Users),
		statCard("Collections", stats.Collections),
		statCard("Pending", stats.PendingCollections),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func statCard(title string, value int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(strconv.Itoa(value)),
	)
	return cardStyle.Render(content)
}
