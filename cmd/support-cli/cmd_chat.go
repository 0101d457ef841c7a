package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jan-server/services/support-api/internal/client"
)

var sessionID string

var sendCmd = &cobra.Command{
	Use:   "send [message]",
	Short: "Send a message and print the agent reply",
	Long: `Send a customer message. Without --session a new conversation is started and its
session id is printed so the conversation can be continued.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := newClient().SendMessage(cmd.Context(), sessionID, strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "session: %s\n", resp.SessionID)
		if resp.Error != "" {
			fmt.Fprintf(out, "warning: %s\n", resp.Error)
		}
		fmt.Fprintf(out, "\n%s\n", resp.Reply)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Print the transcript of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := newClient().History(cmd.Context(), args[0])
		if client.IsNotFound(err) {
			return fmt.Errorf("no conversation with session id %s", args[0])
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(history.Messages) == 0 {
			fmt.Fprintln(out, "(no messages)")
			return nil
		}
		for _, msg := range history.Messages {
			speaker := "Customer"
			if msg.Sender == "ai" {
				speaker = "Agent"
			}
			fmt.Fprintf(out, "[%s] %s: %s\n", msg.Timestamp.Local().Format("2006-01-02 15:04:05"), speaker, msg.Text)
		}
		return nil
	},
}

var faqCmd = &cobra.Command{
	Use:   "faq",
	Short: "List the knowledge base",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		faq, err := newClient().FAQ(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		category := ""
		for _, entry := range faq.Data {
			if entry.Category != category {
				category = entry.Category
				fmt.Fprintf(out, "\n== %s ==\n", strings.ToUpper(category))
			}
			fmt.Fprintf(out, "Q: %s\nA: %s\n", entry.Question, entry.Answer)
		}
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sessionID, "session", "s", "", "Continue an existing session")
}
