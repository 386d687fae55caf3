package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content file and configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d projects, %d social links\n", cfg.Content.Path, len(site.Projects), len(site.SocialLinks))
		if !cfg.Email.Configured() {
			fmt.Fprintln(out, "warning: email relay not configured, contact messages will fail")
		}
		return nil
	},
}
