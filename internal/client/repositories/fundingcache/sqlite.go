package fundingcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Annomy111/foerder-finder/internal/client/models"
	"github.com/Annomy111/foerder-finder/internal/dbx"
)

var ErrNotCached = errors.New("funding not cached")

// SQLiteRepository keeps each opportunity as a JSON payload keyed by its
// resolved funding id. Payloads are opaque to SQL; the cache is a
// read-through convenience, not a queryable store.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, items []models.FundingOpportunity) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM funding_cache`); err != nil {
			return fmt.Errorf("failed to clear funding cache: %w", err)
		}
		for _, item := range items {
			if item.FundingID == "" {
				continue
			}
			payload, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("failed to encode funding %s: %w", item.FundingID, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO funding_cache (funding_id, payload) VALUES (?, ?)`,
				item.FundingID, payload); err != nil {
				return fmt.Errorf("failed to cache funding %s: %w", item.FundingID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.FundingOpportunity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM funding_cache ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list funding cache: %w", err)
	}
	defer rows.Close()

	var items []models.FundingOpportunity
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var item models.FundingOpportunity
		if err := json.Unmarshal(payload, &item); err != nil {
			return nil, fmt.Errorf("failed to decode cached funding: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *SQLiteRepository) Get(ctx context.Context, fundingID string) (*models.FundingOpportunity, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM funding_cache WHERE funding_id = ?`, fundingID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached funding %s: %w", fundingID, err)
	}

	var item models.FundingOpportunity
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("failed to decode cached funding %s: %w", fundingID, err)
	}
	return &item, nil
}
