package nutri

import (
	"database/sql"
	"fmt"

	"github.com/nutrijourney/nutri/internal/service"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user profiles",
}

var (
	regUsername string
	regPassword string
	regFullName string
	regAge      int
	regWeight   float64
	regHeight   float64
	regGender   string
	regActivity float64
)

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.CreateUserInput{
			Username:      regUsername,
			Password:      regPassword,
			FullName:      regFullName,
			Age:           regAge,
			Weight:        regWeight,
			Height:        regHeight,
			Gender:        regGender,
			ActivityLevel: regActivity,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.CreateUser(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered user %s\n", in.Username)
			return nil
		})
	},
}

var (
	loginUsername string
	loginPassword string
)

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify a username/password pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			u, err := service.Authenticate(sqldb, loginUsername, loginPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s\n", u.FullName)
			return nil
		})
	},
}

var showUsername string

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			u, err := service.GetUser(sqldb, showUsername)
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("user %q not found", showUsername)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", u.Username)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", u.FullName)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", u.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", u.Weight)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", u.Height)
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\n", u.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity level: %.2f\n", u.ActivityLevel)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged foods: %d\n", len(u.FoodLog))
			return nil
		})
	},
}

var (
	weightUsername string
	weightValue    float64
)

var userSetWeightCmd = &cobra.Command{
	Use:   "set-weight",
	Short: "Update a user's weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateUserWeight(sqldb, weightUsername, weightValue); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated weight for %s to %.1f kg\n", weightUsername, weightValue)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.AddCommand(userRegisterCmd)
	userRegisterCmd.Flags().StringVar(&regUsername, "username", "", "Unique username")
	userRegisterCmd.Flags().StringVar(&regPassword, "password", "", "Password")
	userRegisterCmd.Flags().StringVar(&regFullName, "full-name", "", "Full name")
	userRegisterCmd.Flags().IntVar(&regAge, "age", 0, "Age in years")
	userRegisterCmd.Flags().Float64Var(&regWeight, "weight", 0, "Weight in kg")
	userRegisterCmd.Flags().Float64Var(&regHeight, "height", 0, "Height in cm")
	userRegisterCmd.Flags().StringVar(&regGender, "gender", "", "Gender")
	userRegisterCmd.Flags().Float64Var(&regActivity, "activity-level", 1.2, "Activity multiplier (1.2 sedentary .. 1.9 very active)")
	_ = userRegisterCmd.MarkFlagRequired("username")
	_ = userRegisterCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userLoginCmd)
	userLoginCmd.Flags().StringVar(&loginUsername, "username", "", "Username")
	userLoginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	_ = userLoginCmd.MarkFlagRequired("username")
	_ = userLoginCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userShowCmd)
	userShowCmd.Flags().StringVar(&showUsername, "username", "", "Username")
	_ = userShowCmd.MarkFlagRequired("username")

	userCmd.AddCommand(userSetWeightCmd)
	userSetWeightCmd.Flags().StringVar(&weightUsername, "username", "", "Username")
	userSetWeightCmd.Flags().Float64Var(&weightValue, "weight", 0, "New weight in kg")
	_ = userSetWeightCmd.MarkFlagRequired("username")
	_ = userSetWeightCmd.MarkFlagRequired("weight")
}
