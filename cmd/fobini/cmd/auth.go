package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	fobini "github.com/fobiniyen/fobini-go"
)

var registerFlags fobini.RegisterRequest

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		user, err := app.auth.Register(cmd.Context(), registerFlags)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Registered and logged in as %s (%s)\n", user.Username, user.Email)
	},
}

var (
	loginUser     string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email or username",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		user, err := app.auth.Login(cmd.Context(), loginUser, loginPassword)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		app.auth.Logout()
		fmt.Println("Logged out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		if !app.auth.IsLoggedIn() {
			fmt.Println("Not logged in")
			return
		}
		user := app.auth.CurrentUser()
		if user == nil {
			fmt.Println("Logged in (no cached profile, run 'fobini profile show')")
			return
		}
		fmt.Printf("%s %s <%s> (@%s)\n", user.FirstName, user.LastName, user.Email, user.Username)
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerFlags.Email, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerFlags.Password, "password", "", "password (min 6 characters)")
	registerCmd.Flags().StringVar(&registerFlags.ConfirmPassword, "confirm-password", "", "password confirmation")
	registerCmd.Flags().StringVar(&registerFlags.Username, "username", "", "username (min 3 characters)")
	registerCmd.Flags().StringVar(&registerFlags.FirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerFlags.LastName, "last-name", "", "last name")
	for _, f := range []string{"email", "password", "confirm-password", "username", "first-name", "last-name"} {
		_ = registerCmd.MarkFlagRequired(f)
	}

	loginCmd.Flags().StringVar(&loginUser, "user", "", "email address or username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password")
	_ = loginCmd.MarkFlagRequired("user")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
