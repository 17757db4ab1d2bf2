package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/mairapenna/nutriplan_backend/cmd/http"
	systemcmd "github.com/mairapenna/nutriplan_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "nutriplan",
	Short: "NutriPlan backend for a women's health nutrition practice.",
	Long: `NutriPlan is the backend for a nutrition practice focused on women's
health. It serves the clinician dashboard (patients, appointments, meal
plans, messaging) and the patient portal through one HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
