package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fobini "github.com/fobiniyen/fobini-go"
)

var phobiaCmd = &cobra.Command{
	Use:   "phobia",
	Short: "Browse the phobia catalog and manage tracked phobias",
}

var phobiaListOpts fobini.PhobiaListOptions

var phobiaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List phobias from the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		list, err := app.phobias.GetPhobias(cmd.Context(), phobiaListOpts)
		if err != nil {
			fail(err)
		}
		for _, p := range list.Data {
			cats := make([]string, 0, len(p.Categories))
			for _, c := range p.Categories {
				cats = append(cats, c.Name)
			}
			fmt.Printf("%s  %s (%s)  [%s]\n", p.ID, p.Name, p.EnglishName, strings.Join(cats, ", "))
		}
		fmt.Printf("page %d/%d, %d total\n", list.Meta.Page, list.Meta.LastPage, list.Meta.Total)
	},
}

var phobiaShowCmd = &cobra.Command{
	Use:   "show <phobia-id>",
	Short: "Show a phobia's detail, symptoms, and therapies",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		detail, err := app.phobias.GetPhobiaDetail(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s (%s)\n", detail.Name, detail.EnglishName)
		fmt.Printf("affects %.1f%% of the population\n\n", detail.Percentage)
		fmt.Println(detail.Description)
		if len(detail.CommonSymptoms) > 0 {
			fmt.Println("\nCommon symptoms:")
			for _, s := range detail.CommonSymptoms {
				fmt.Printf("  - %s\n", s)
			}
		}
		if len(detail.Therapies) > 0 {
			fmt.Println("\nTherapies:")
			for _, t := range detail.Therapies {
				fmt.Printf("  %s  %s (%d strategies)\n", t.ID, t.Name, len(t.Strategies))
			}
		}
	},
}

var phobiaTrackCmd = &cobra.Command{
	Use:   "track <phobia-id>",
	Short: "Start tracking a phobia",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		up, err := app.phobias.CreateUserPhobia(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		fmt.Printf("Tracking started: %s\n", up.ID)
	},
}

var phobiaMinePage fobini.PageOptions

var phobiaMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your tracked phobias",
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		items, err := app.phobias.GetUserPhobias(cmd.Context(), phobiaMinePage)
		if err != nil {
			fail(err)
		}
		if len(items) == 0 {
			fmt.Println("No tracked phobias")
			return
		}
		for _, it := range items {
			fmt.Printf("%s  %s (since %s)\n", it.ID, it.Phobia.Name, it.CreatedAt)
		}
	},
}

func init() {
	phobiaListCmd.Flags().StringVar(&phobiaListOpts.Search, "search", "", "filter by name")
	phobiaListCmd.Flags().StringVar(&phobiaListOpts.CategoryID, "category", "", "filter by category id")
	phobiaListCmd.Flags().IntVar(&phobiaListOpts.Page, "page", 0, "page number")
	phobiaListCmd.Flags().IntVar(&phobiaListOpts.Limit, "limit", 0, "page size")

	phobiaMineCmd.Flags().IntVar(&phobiaMinePage.Page, "page", 0, "page number")
	phobiaMineCmd.Flags().IntVar(&phobiaMinePage.Limit, "limit", 0, "page size")

	phobiaCmd.AddCommand(phobiaListCmd)
	phobiaCmd.AddCommand(phobiaShowCmd)
	phobiaCmd.AddCommand(phobiaTrackCmd)
	phobiaCmd.AddCommand(phobiaMineCmd)
	rootCmd.AddCommand(phobiaCmd)
}
