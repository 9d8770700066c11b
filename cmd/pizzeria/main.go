package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pizzeria",
	Short: "Pizza builder and checkout web app",
	Long: `pizzeria serves the pizza builder: pick toppings, watch the total,
check out in three steps and get an order confirmation.

Run "pizzeria serve" to start the web server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, syncAssetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
