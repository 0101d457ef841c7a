package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jan-server/services/support-api/internal/client"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "support-cli",
	Short: "Terminal client for the support chat API",
	Long: `support-cli talks to a running support-api over HTTP.

Examples:
  support-cli send "Where is my order?"
  support-cli send "Any update?" --session 7b1e4c52-3f0a-4d8e-9c21-5a6b7c8d9e0f
  support-cli history 7b1e4c52-3f0a-4d8e-9c21-5a6b7c8d9e0f
  support-cli faq`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	baseURL        string
	requestTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(faqCmd)

	defaultURL := os.Getenv("SUPPORT_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8190"
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", defaultURL, "Support API base URL (env SUPPORT_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 90*time.Second, "Request timeout")
}

func newClient() *client.Client {
	return client.New(baseURL, requestTimeout)
}
