package nutri

import (
	"database/sql"
	"fmt"

	"github.com/nutrijourney/nutri/internal/service"
	"github.com/spf13/cobra"
)

var summaryUser string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a user's intake totals and metabolic targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			u, err := service.GetUser(sqldb, summaryUser)
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("user %q not found", summaryUser)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User: %s (%s)\n", u.Username, u.FullName)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %.0f kcal over %d entries\n", u.TotalCalories(), len(u.FoodLog))
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: P %.1fg | F %.1fg | C %.1fg\n", u.TotalProtein(), u.TotalFat(), u.TotalCarbs())
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %.0f ml\n", u.TotalWater())
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.2f\n", u.BMI())
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %.0f kcal\n", u.BMR())
			fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %.0f kcal\n", u.TDEE())
			fmt.Fprintf(cmd.OutOrStdout(), "Daily target: %.0f kcal\n", u.DailyCalorieTarget())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryUser, "user", "", "Username")
	_ = summaryCmd.MarkFlagRequired("user")
}
