package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bistro/app/routes"
	"bistro/config"
	"bistro/internal/server"
	"bistro/pkg/router"
)

// bistro serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// bistro route:list — print all registered named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		// The driver connects lazily, so listing routes needs no live
		// database.
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.MongoURI()))
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background()) //nolint:errcheck

		r := router.New()
		routes.RegisterAPI(r, routes.Deps{DB: client.Database(config.MongoDatabase())})

		names := r.Names()
		if len(names) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH")
		fmt.Fprintln(w, "----\t----")
		for _, name := range names {
			path, _ := r.Path(name)
			fmt.Fprintf(w, "%s\t%s\n", name, path)
		}
		return w.Flush()
	},
}
