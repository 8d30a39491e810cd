package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	fobini "github.com/fobiniyen/fobini-go"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the AI therapy assistant",
}

var chatSendCmd = &cobra.Command{
	Use:   "send <user-phobia-id> <message>",
	Short: "Send a message about a tracked phobia",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		reply, err := app.chat.SendMessage(cmd.Context(), args[0], args[1])
		if err != nil {
			fail(err)
		}
		fmt.Println(reply)
	},
}

var chatHistoryPage fobini.PageOptions

var chatHistoryCmd = &cobra.Command{
	Use:   "history <user-phobia-id>",
	Short: "Show the chat history for a tracked phobia",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := newApp()
		if err != nil {
			fail(err)
		}
		page, err := app.chat.GetChatHistory(cmd.Context(), args[0], chatHistoryPage)
		if err != nil {
			fail(err)
		}
		for _, m := range page.Messages {
			fmt.Printf("[%s] %s: %s\n", m.CreatedAt, m.Role, m.Message)
		}
		fmt.Printf("page %d/%d, %d messages\n", page.Meta.CurrentPage, page.Meta.TotalPages, page.Meta.TotalItems)
	},
}

func init() {
	chatHistoryCmd.Flags().IntVar(&chatHistoryPage.Page, "page", 0, "page number")
	chatHistoryCmd.Flags().IntVar(&chatHistoryPage.Limit, "limit", 0, "page size")

	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	rootCmd.AddCommand(chatCmd)
}
