package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Track job applications kept in a remote store",
	Long: `tracker serves a carousel view of your job applications and lets you add,
edit and delete them. Records live in a remote HTTP store set by STORE_ENDPOINT.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file (missing is fine)")
	rootCmd.AddCommand(serveCmd, listCmd)
}
