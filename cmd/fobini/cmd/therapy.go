package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var therapyCmd = &cobra.Command{
	Use:   "therapy",
	Short: "Browse therapy programs and coping strategies",
}

var therapyListCmd = &cobra.Command{
	Use:   "list <phobia-id>",
	Short: "List therapies for a phobia",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		therapies, err := app.therapy.GetTherapies(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		for _, t := range therapies {
			fmt.Printf("%s  %s\n", t.ID, t.Name)
		}
	},
}

var therapyShowCmd = &cobra.Command{
	Use:   "show <therapy-id>",
	Short: "Show a therapy session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		t, err := app.therapy.GetTherapy(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s (step %d, %d min)\n\n%s\n", t.Name, t.StepNumber, t.DurationInMinutes, t.Description)
		if t.IsCompleted != nil && *t.IsCompleted {
			fmt.Println("\ncompleted")
		}
	},
}

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Work through coping strategies",
}

var strategyListCmd = &cobra.Command{
	Use:   "list <therapy-id>",
	Short: "List coping strategies for a therapy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		strategies, err := app.therapy.GetCopingStrategies(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		for _, s := range strategies {
			done := " "
			if s.IsCompleted != nil && *s.IsCompleted {
				done = "x"
			}
			fmt.Printf("[%s] %d. %s  (%s, %d min)\n", done, s.StepNumber, s.Title, s.ID, s.DurationInMinutes)
		}
	},
}

var strategyShowCmd = &cobra.Command{
	Use:   "show <strategy-id>",
	Short: "Show a coping strategy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		s, err := app.therapy.GetCopingStrategy(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s (step %d, %d min)\n\n%s\n", s.Title, s.StepNumber, s.DurationInMinutes, s.Content)
	},
}

var strategyCompleteCmd = &cobra.Command{
	Use:   "complete <strategy-id>",
	Short: "Mark a coping strategy as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		result, err := app.therapy.CompleteStrategy(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		if result.NextStrategyID != nil {
			fmt.Printf("Completed. Next strategy: %s\n", *result.NextStrategyID)
		} else {
			fmt.Println("Completed. That was the last strategy.")
		}
	},
}

var strategyCompletedCmd = &cobra.Command{
	Use:   "completed <user-phobia-id>",
	Short: "List completed strategy ids for a tracked phobia",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		ids, err := app.therapy.GetCompletedStrategies(cmd.Context(), args[0])
		if err != nil {
			fail(err)
		}
		if len(ids) == 0 {
			fmt.Println("No completed strategies")
			return
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	therapyCmd.AddCommand(therapyListCmd)
	therapyCmd.AddCommand(therapyShowCmd)
	rootCmd.AddCommand(therapyCmd)

	strategyCmd.AddCommand(strategyListCmd)
	strategyCmd.AddCommand(strategyShowCmd)
	strategyCmd.AddCommand(strategyCompleteCmd)
	strategyCmd.AddCommand(strategyCompletedCmd)
	rootCmd.AddCommand(strategyCmd)
}
