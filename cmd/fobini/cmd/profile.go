package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	fobini "github.com/fobiniyen/fobini-go"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		p, err := app.users.GetProfile(cmd.Context())
		if err != nil {
			fail(err)
		}
		printProfile(p)
	},
}

var (
	profileFirstName string
	profileLastName  string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your first and last name",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		p, err := app.users.UpdateProfile(cmd.Context(), profileFirstName, profileLastName)
		if err != nil {
			fail(err)
		}
		fmt.Println("Profile updated")
		printProfile(p)
	},
}

func printProfile(p *fobini.UserProfile) {
	fmt.Printf("id:        %s\n", p.ID)
	fmt.Printf("email:     %s\n", p.Email)
	fmt.Printf("username:  %s\n", p.Username)
	fmt.Printf("name:      %s %s\n", p.FirstName, p.LastName)
	fmt.Printf("member since: %s\n", p.CreatedAt)
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileFirstName, "first-name", "", "first name")
	profileUpdateCmd.Flags().StringVar(&profileLastName, "last-name", "", "last name")
	_ = profileUpdateCmd.MarkFlagRequired("first-name")
	_ = profileUpdateCmd.MarkFlagRequired("last-name")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
