package menu

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

const menuColumns = `id, title, image_url, ocr_raw_text, ocr_processed_text, is_featured, created_at, updated_at`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *Menu) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO menus (title, image_url, ocr_raw_text, ocr_processed_text, is_featured)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+menuColumns,
		m.Title,
		m.ImageURL,
		m.OCRRawText,
		m.OCRProcessedText,
		m.IsFeatured,
	).Scan(
		&m.ID,
		&m.Title,
		&m.ImageURL,
		&m.OCRRawText,
		&m.OCRProcessedText,
		&m.IsFeatured,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return store.FromPg(err, "failed to create menu")
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Menu, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+menuColumns+`
		FROM menus
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, store.FromPg(err, "failed to fetch menus")
	}
	defer rows.Close()

	menus := make([]*Menu, 0)
	for rows.Next() {
		var m Menu
		if err := rows.Scan(
			&m.ID,
			&m.Title,
			&m.ImageURL,
			&m.OCRRawText,
			&m.OCRProcessedText,
			&m.IsFeatured,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		menus = append(menus, &m)
	}
	return menus, rows.Err()
}
