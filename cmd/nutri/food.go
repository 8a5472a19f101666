package nutri

import (
	"database/sql"
	"fmt"

	"github.com/nutrijourney/nutri/internal/model"
	"github.com/nutrijourney/nutri/internal/service"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage the food log",
}

var (
	foodUser     string
	foodName     string
	foodCalories float64
	foodProtein  float64
	foodFat      float64
	foodCarbs    float64
	foodWater    float64
	foodDate     string
	foodDay      string
)

func addNutrientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&foodName, "name", "", "Food name")
	cmd.Flags().Float64Var(&foodCalories, "calories", 0, "Calories (kcal)")
	cmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein (g)")
	cmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat (g)")
	cmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs (g)")
	cmd.Flags().Float64Var(&foodWater, "water", 0, "Water (ml)")
}

func flagFood() model.Food {
	f := model.NewFood(foodName, foodCalories, foodProtein, foodFat, foodCarbs)
	f.Water = foodWater
	return f
}

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a consumed food",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, day := todayDateDay(foodDate, foodDay)
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogFood(sqldb, foodUser, flagFood(), date, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %d for %s on %s (%s)\n", id, foodUser, date, day)
			return nil
		})
	},
}

var foodListRecent bool

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged foods (chronological by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			var (
				log []model.Food
				err error
			)
			if foodListRecent {
				log, err = service.FoodLog(sqldb, foodUser)
			} else {
				log, err = service.ChronologicalFoodLog(sqldb, foodUser)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tDAY\tNAME\tKCAL\tP(g)\tF(g)\tC(g)\tWATER(ml)")
			for _, f := range log {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%.0f\n",
					f.ID, f.Date, f.Day, f.Name, f.Calories, f.Protein, f.Fat, f.Carbs, f.Water)
			}
			return nil
		})
	},
}

var foodEntryID int64

var foodUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update logged foods by --id or by --date/--day",
	Long:  "With --id a single entry is rewritten. Without it, every entry matching the user, --date, and --day is rewritten to the given food.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if foodEntryID > 0 {
				if err := service.UpdateFoodLogEntry(sqldb, foodEntryID, flagFood()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", foodEntryID)
				return nil
			}
			affected, err := service.UpdateFoodLog(sqldb, foodUser, flagFood(), foodDate, foodDay)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d entries for %s on %s (%s)\n", affected, foodUser, foodDate, foodDay)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete logged foods by --id or by --name/--date/--day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if foodEntryID > 0 {
				if err := service.DeleteFoodLogEntry(sqldb, foodEntryID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", foodEntryID)
				return nil
			}
			affected, err := service.DeleteFoodLog(sqldb, foodUser, foodName, foodDate, foodDay)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", affected)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.PersistentFlags().StringVar(&foodUser, "user", "", "Username owning the log")
	_ = foodCmd.MarkPersistentFlagRequired("user")

	foodCmd.AddCommand(foodLogCmd)
	addNutrientFlags(foodLogCmd)
	foodLogCmd.Flags().StringVar(&foodDate, "date", "", "Consumption date YYYY-MM-DD (default today)")
	foodLogCmd.Flags().StringVar(&foodDay, "day", "", "Weekday label (default today's)")
	_ = foodLogCmd.MarkFlagRequired("name")

	foodCmd.AddCommand(foodListCmd)
	foodListCmd.Flags().BoolVar(&foodListRecent, "recent", false, "Order by insertion instead of date")

	foodCmd.AddCommand(foodUpdateCmd)
	addNutrientFlags(foodUpdateCmd)
	foodUpdateCmd.Flags().Int64Var(&foodEntryID, "id", 0, "Entry id (addresses a single row)")
	foodUpdateCmd.Flags().StringVar(&foodDate, "date", "", "Consumption date of the entries to update")
	foodUpdateCmd.Flags().StringVar(&foodDay, "day", "", "Weekday label of the entries to update")
	_ = foodUpdateCmd.MarkFlagRequired("name")

	foodCmd.AddCommand(foodDeleteCmd)
	foodDeleteCmd.Flags().Int64Var(&foodEntryID, "id", 0, "Entry id (addresses a single row)")
	foodDeleteCmd.Flags().StringVar(&foodName, "name", "", "Food name of the entries to delete")
	foodDeleteCmd.Flags().StringVar(&foodDate, "date", "", "Consumption date of the entries to delete")
	foodDeleteCmd.Flags().StringVar(&foodDay, "day", "", "Weekday label of the entries to delete")
}
