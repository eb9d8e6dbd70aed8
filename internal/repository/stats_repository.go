package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"talenthub/internal/apperr"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

var statsCollections = []string{"profiles", "talents", "reactions", "comments", "service_requests"}

// CollectionCounts reports per-collection row counts for the health endpoint.
func (r *statsRepository) CollectionCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(statsCollections))

	for _, collection := range statsCollections {
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, collection)
		if err := r.db.GetContext(ctx, &count, query); err != nil {
			return nil, apperr.Store("counting "+collection, err)
		}
		counts[collection] = count
	}

	return counts, nil
}
