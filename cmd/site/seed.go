package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	website "github.com/servetdekorasyon/website"
	"github.com/servetdekorasyon/website/content"
	"github.com/servetdekorasyon/website/gateway"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed self-hosted storage with the demo datasets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Storage.Driver == "" {
				return errors.New("seed requires a configured storage driver")
			}

			module, err := website.New(cfg)
			if err != nil {
				return err
			}
			defer module.Close()

			total, err := seedDemoData(cmd.Context(), module.Gateway(), time.Now())
			if err != nil {
				return err
			}

			cmd.Printf("seeded %d records into %s storage\n", total, cfg.Storage.Driver)
			return nil
		},
	}
}

// seedDemoData inserts every demo dataset, skipping rows whose natural key
// already exists, and reports how many records were written.
func seedDemoData(ctx context.Context, gw gateway.Service, now time.Time) (int, error) {
	total := 0
	seed := func(collection string, fields map[string]any) error {
		if _, err := gw.InsertRecord(ctx, collection, fields); err != nil {
			return err
		}
		total++
		return nil
	}

	posts, err := content.FallbackPosts(now)
	if err != nil {
		return total, err
	}
	for _, post := range posts {
		if err := seedUnlessPresent(ctx, gw, content.CollectionPosts, "slug", post.Slug, func() error {
			return seed(content.CollectionPosts, map[string]any{
				"title":          post.Title,
				"content":        post.Content,
				"excerpt":        post.Excerpt,
				"category":       post.Category,
				"author":         post.Author,
				"published_date": post.PublishedDate.UTC().Format(time.RFC3339),
				"slug":           post.Slug,
				"published":      post.Published,
				"created_at":     post.CreatedAt.UTC().Format(time.RFC3339),
			})
		}); err != nil {
			return total, err
		}
	}

	for _, reference := range content.FallbackReferences(now) {
		if err := seedUnlessPresent(ctx, gw, content.CollectionReferences, "title", reference.Title, func() error {
			return seed(content.CollectionReferences, map[string]any{
				"title":       reference.Title,
				"description": reference.Description,
				"image_url":   reference.ImageURL,
				"created_at":  reference.CreatedAt.UTC().Format(time.RFC3339),
			})
		}); err != nil {
			return total, err
		}
	}

	for _, offering := range content.FallbackOfferings() {
		if err := seedUnlessPresent(ctx, gw, content.CollectionOfferings, "title", offering.Title, func() error {
			return seed(content.CollectionOfferings, map[string]any{
				"title":       offering.Title,
				"description": offering.Description,
				"icon":        string(offering.Icon),
				"order_index": offering.OrderIndex,
			})
		}); err != nil {
			return total, err
		}
	}

	for _, setting := range content.FallbackSettings() {
		if err := seedUnlessPresent(ctx, gw, content.CollectionSettings, "key", setting.Key, func() error {
			return seed(content.CollectionSettings, map[string]any{
				"key":         setting.Key,
				"value":       setting.Value,
				"type":        string(setting.Type),
				"description": setting.Description,
			})
		}); err != nil {
			return total, err
		}
	}

	for _, partner := range content.FallbackPartners() {
		if err := seedUnlessPresent(ctx, gw, content.CollectionPartners, "name", partner.Name, func() error {
			return seed(content.CollectionPartners, map[string]any{
				"name":        partner.Name,
				"logo_url":    partner.LogoURL,
				"website_url": partner.WebsiteURL,
				"order_index": partner.OrderIndex,
				"active":      partner.Active,
			})
		}); err != nil {
			return total, err
		}
	}

	return total, nil
}

// seedUnlessPresent skips rows whose natural key already exists, so the
// seeder can run repeatedly against the same database.
func seedUnlessPresent(ctx context.Context, gw gateway.Service, collection, field, value string, insert func() error) error {
	_, err := gw.ResolveOne(ctx, collection, field, value)
	if err == nil {
		return nil
	}
	if !gateway.IsNotFound(err) {
		return err
	}
	return insert()
}
