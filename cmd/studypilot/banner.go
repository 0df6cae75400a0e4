package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBannerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banner",
		Short: "Inspect or change the premium banner dismissal",
	}

	status := func(cmd *cobra.Command) {
		if a.provider.PremiumBanner(a.slots).Dismissed(cmd.Context()) {
			fmt.Fprintln(a.out, "dismissed")
			return
		}
		fmt.Fprintln(a.out, "shown")
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Print whether the premium banner is shown",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				status(cmd)
			},
		},
		&cobra.Command{
			Use:   "dismiss",
			Short: "Hide the premium banner",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				a.provider.PremiumBanner(a.slots).Dismiss(cmd.Context())
				status(cmd)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Show the premium banner again",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				a.provider.PremiumBanner(a.slots).Clear(cmd.Context())
				status(cmd)
			},
		},
	)
	return cmd
}
