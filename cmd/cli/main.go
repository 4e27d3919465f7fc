package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fishtrade-cli",
		Short: "Fishtrade CLI tool",
		Long:  `A command line interface for interacting with the fishtrade API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the fishtrade API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Bill sequence commands
	billCmd := &cobra.Command{
		Use:   "bill",
		Short: "Bill number operations",
	}
	billCmd.AddCommand(billNextCmd(), billAllocateCmd())
	rootCmd.AddCommand(billCmd)

	rootCmd.AddCommand(dashboardCmd(), balancesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func billNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next [type]",
		Short: "Preview the next bill number without consuming it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("%s/api/v1/bills/%s/next", baseURL, args[0]))
		},
	}
}

func billAllocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allocate [type]",
		Short: "Allocate the next bill number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON(fmt.Sprintf("%s/api/v1/bills/%s/allocate", baseURL, args[0]))
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard rollup",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(baseURL + "/api/v1/dashboard")
		},
	}
}

func balancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balances [party-type]",
		Short: "Show billed, paid and due per party",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(fmt.Sprintf("%s/api/v1/payments/balances?party_type=%s", baseURL, args[0]))
		},
	}
}

func getJSON(url string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(url string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(url, "application/json", nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printJSON(decoded)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
