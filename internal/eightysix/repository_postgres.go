package eightysix

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, itemName, itemType string, itemID *string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO eighty_sixed_items (item_name, item_type, item_id)
		VALUES ($1, $2, $3)
	`, itemName, itemType, itemID)
	return store.FromPg(err, "failed to log 86 event")
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_name, item_type, item_id, timestamp, created_at
		FROM eighty_sixed_items
		ORDER BY timestamp DESC
	`)
	if err != nil {
		return nil, store.FromPg(err, "failed to fetch 86 log")
	}
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID,
			&it.ItemName,
			&it.ItemType,
			&it.ItemID,
			&it.Timestamp,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
