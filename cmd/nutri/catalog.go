package nutri

import (
	"database/sql"
	"fmt"

	"github.com/nutrijourney/nutri/internal/service"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the reference food catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			foods, err := service.CatalogFoods(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL\tP(g)\tF(g)\tC(g)\tWATER(ml)")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.0f\n",
					f.Name, f.Calories, f.Protein, f.Fat, f.Carbs, f.Water)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
