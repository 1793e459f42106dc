// Command bistro is the operations CLI: run the server, inspect the route
// table, and seed the database with sample catalog data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bistro",
	Short: "Bistro Boss backend CLI",
	Long:  "Bistro Boss restaurant backend. Use this CLI to run the API server, list routes, and seed sample data.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(seedCmd)
}
