// Command backfill_slugs derives slugs for articles that predate the slug
// column. It is a one-off maintenance tool; run it against the live database
// with the same environment the server uses.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"khabar/config"
	"khabar/domain"
	"khabar/driver/news_db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := news_db.InitPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, `
		SELECT id::text, COALESCE(url_headline,''), COALESCE(long_headline,''),
		       COALESCE(title_en,''), COALESCE(title_hi,'')
		FROM articles
		WHERE COALESCE(slug,'') = ''
		ORDER BY created_at`)
	if err != nil {
		log.Fatalf("failed to list articles: %v", err)
	}

	type candidate struct {
		id       string
		headline string
	}
	var candidates []candidate
	for rows.Next() {
		var id, urlHeadline, longHeadline, titleEN, titleHI string
		if err := rows.Scan(&id, &urlHeadline, &longHeadline, &titleEN, &titleHI); err != nil {
			log.Fatalf("failed to scan article: %v", err)
		}
		headline := firstNonEmpty(urlHeadline, longHeadline, titleEN, titleHI)
		if headline == "" {
			log.Printf("skipping %s: no headline to derive a slug from", id)
			continue
		}
		candidates = append(candidates, candidate{id: id, headline: headline})
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("failed to read articles: %v", err)
	}
	rows.Close()

	updated := 0
	for _, c := range candidates {
		slug := domain.Slugify(c.headline)
		if slug == "" || slug == "-" {
			log.Printf("skipping %s: headline %q yields no usable slug", c.id, c.headline)
			continue
		}
		var exists bool
		if err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)`, slug).Scan(&exists); err != nil {
			log.Fatalf("failed to check slug %q: %v", slug, err)
		}
		if exists {
			slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
		}
		tag, err := pool.Exec(ctx, `UPDATE articles SET slug = $1, updated_at = now() WHERE id::text = $2`, slug, c.id)
		if err != nil {
			log.Fatalf("failed to update %s: %v", c.id, err)
		}
		if tag.RowsAffected() == 0 {
			log.Printf("article %s disappeared mid-run", c.id)
			continue
		}
		updated++
	}

	log.Printf("done: %d slugs backfilled out of %d candidates", updated, len(candidates))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
