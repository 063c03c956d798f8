// Command seedctl writes the built-in seed catalog into a Firestore product
// collection, keeping the seed ids as document keys. It is meant for
// bootstrapping a fresh project before the storefront first starts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"renteasy/internal/domain/entity"
)

func main() {
	project := flag.String("project", "", "Firestore project id")
	collection := flag.String("collection", "products", "product collection name")
	credentials := flag.String("credentials", "", "path to a service account key file (optional)")
	flag.Parse()

	if *project == "" {
		fmt.Fprintln(os.Stderr, "seedctl: -project is required")
		os.Exit(2)
	}

	if err := run(context.Background(), *project, *collection, *credentials); err != nil {
		slog.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, project, collection, credentials string) error {
	var opts []option.ClientOption
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: project}, opts...)
	if err != nil {
		return fmt.Errorf("initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("get Firestore client: %w", err)
	}
	defer client.Close()

	for _, product := range entity.SeedCatalog() {
		doc := map[string]any{
			"name":        product.Name,
			"category":    string(product.Category),
			"price":       product.Price,
			"description": product.Description,
			"image":       product.Image,
			"available":   product.Available,
			"features":    product.Features,
		}

		if _, err := client.Collection(collection).Doc(product.ID).Set(ctx, doc); err != nil {
			return fmt.Errorf("seed product %s: %w", product.ID, err)
		}

		slog.Info("seeded product", slog.String("id", product.ID), slog.String("name", product.Name))
	}

	return nil
}
