package nutri

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutri",
	Short: "nutri tracks meals, hydration, and metabolic targets from your terminal",
	Long:  "nutri is a local-first nutrition journal: per-user profiles, a food log with macros and water, a reference food catalog, and derived BMI/BMR/TDEE targets.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
