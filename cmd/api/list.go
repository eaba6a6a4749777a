package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-carousel/internal/config"
	"github.com/justsurfingit/job-carousel/internal/logging"
	"github.com/justsurfingit/job-carousel/internal/models"
	"github.com/justsurfingit/job-carousel/internal/services"
	"github.com/justsurfingit/job-carousel/internal/store"
)

var (
	listJSON   bool
	listStatus string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the applications held by the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		log := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

		client := store.NewClient(cfg.StoreEndpoint,
			store.WithTimeout(cfg.StoreTimeout),
			store.WithLogger(log),
		)
		apps, err := client.FetchAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch applications: %w", err)
		}
		apps = services.FilterApplications(apps, listStatus)

		out := cmd.OutOrStdout()
		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(apps)
		}

		if len(apps) == 0 {
			fmt.Fprintln(out, "No applications found.")
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tROLE\tSTATUS\tAPPLIED")
		for _, card := range services.RenderCards(apps) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", card.ID, card.Company, card.Role, card.Status, card.Applied)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", models.FilterAll, "Only show applications with this status")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}
