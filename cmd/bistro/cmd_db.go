package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bistro/app/models"
	"bistro/app/repositories"
	"bistro/config"
	"bistro/pkg/database"
)

// bistro db:seed — load a small sample catalog for local development.
var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Seed sample menu items and reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, db, err := database.Connect(ctx)
		if err != nil {
			return err
		}
		defer database.Disconnect(client)

		menuRepo := repositories.NewMenuRepository(db)
		reviewRepo := repositories.NewReviewRepository(db)

		if n, err := menuRepo.EstimatedCount(ctx); err != nil {
			return err
		} else if n > 0 {
			fmt.Println("menu collection is not empty, skipping seed")
			return nil
		}

		for _, item := range sampleMenu {
			if _, err := menuRepo.Insert(ctx, item); err != nil {
				return err
			}
		}
		for _, review := range sampleReviews {
			if _, err := reviewRepo.Insert(ctx, review); err != nil {
				return err
			}
		}

		fmt.Printf("seeded %d menu items and %d reviews\n", len(sampleMenu), len(sampleReviews))
		return nil
	},
}

var sampleMenu = []models.MenuItem{
	{Name: "Caesar Salad", Recipe: "Romaine lettuce, parmesan, croutons, caesar dressing", Category: "salad", Price: 8.5},
	{Name: "Margherita Pizza", Recipe: "Tomato, mozzarella, fresh basil", Category: "pizza", Price: 12.0},
	{Name: "Tuscan Tomato Soup", Recipe: "Slow-roasted tomatoes, basil, cream", Category: "soup", Price: 6.0},
	{Name: "Tiramisu", Recipe: "Mascarpone, espresso-soaked ladyfingers, cocoa", Category: "dessert", Price: 7.5},
	{Name: "Fresh Lemonade", Recipe: "Lemon, cane sugar, mint", Category: "drinks", Price: 3.5},
	{Name: "Chef's Special Risotto", Recipe: "Arborio rice, wild mushrooms, parmesan", Category: "offered", Price: 14.5},
}

var sampleReviews = []models.Review{
	{Name: "Ayesha R.", Details: "The margherita pizza is the best in town.", Rating: 5},
	{Name: "Daniel K.", Details: "Quick service, generous portions.", Rating: 4},
	{Name: "Mei L.", Details: "Loved the tiramisu, will come back.", Rating: 5},
}
