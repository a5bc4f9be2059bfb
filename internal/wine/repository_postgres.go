package wine

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

const wineColumns = `id, name, type, vintage, region, price, description, is_86d, created_at, updated_at`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanWine(row pgx.Row) (*Wine, error) {
	var w Wine
	if err := row.Scan(
		&w.ID,
		&w.Name,
		&w.Type,
		&w.Vintage,
		&w.Region,
		&w.Price,
		&w.Description,
		&w.Is86d,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Wine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+wineColumns+`
		FROM wines
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, store.FromPg(err, "failed to fetch wines")
	}
	defer rows.Close()

	wines := make([]*Wine, 0)
	for rows.Next() {
		w, err := scanWine(rows)
		if err != nil {
			return nil, err
		}
		wines = append(wines, w)
	}
	return wines, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, w *Wine) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO wines (name, type, vintage, region, price, description, is_86d)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+wineColumns,
		w.Name,
		w.Type,
		w.Vintage,
		w.Region,
		w.Price,
		w.Description,
		w.Is86d,
	)

	created, err := scanWine(row)
	if err != nil {
		return store.FromPg(err, "failed to create wine")
	}
	*w = *created
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch map[string]any) (*Wine, error) {
	// Patch keys come straight from the request body; identifiers are
	// sanitized so an unknown field surfaces as the store's own
	// undefined-column error.
	sets := make([]string, 0, len(patch)+1)
	args := make([]any, 0, len(patch)+1)
	i := 1
	for col, val := range patch {
		sets = append(sets, fmt.Sprintf("%s = $%d", pgx.Identifier{col}.Sanitize(), i))
		args = append(args, val)
		i++
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE wines SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), i, wineColumns,
	)

	w, err := scanWine(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, store.FromPg(err, "wine not found")
	}
	return w, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM wines WHERE id = $1`, id)
	return store.FromPg(err, "failed to delete wine")
}

func (r *PostgresRepository) SetEightySixed(ctx context.Context, nameSub string, down bool) ([]*Wine, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE wines
		SET is_86d = $1, updated_at = now()
		WHERE name ILIKE '%' || $2 || '%'
		RETURNING `+wineColumns,
		down, nameSub,
	)
	if err != nil {
		return nil, store.FromPg(err, "failed to update wines")
	}
	defer rows.Close()

	wines := make([]*Wine, 0)
	for rows.Next() {
		w, err := scanWine(rows)
		if err != nil {
			return nil, err
		}
		wines = append(wines, w)
	}
	return wines, rows.Err()
}
