package special

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

const specialColumns = `id, name, description, price, type, start_date, end_date, is_active, created_at, updated_at`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanSpecial(row pgx.Row) (*Special, error) {
	var sp Special
	if err := row.Scan(
		&sp.ID,
		&sp.Name,
		&sp.Description,
		&sp.Price,
		&sp.Type,
		&sp.StartDate,
		&sp.EndDate,
		&sp.IsActive,
		&sp.CreatedAt,
		&sp.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Special, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+specialColumns+`
		FROM specials
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, store.FromPg(err, "failed to fetch specials")
	}
	defer rows.Close()

	specials := make([]*Special, 0)
	for rows.Next() {
		sp, err := scanSpecial(rows)
		if err != nil {
			return nil, err
		}
		specials = append(specials, sp)
	}
	return specials, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, sp *Special) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO specials (name, description, price, type, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+specialColumns,
		sp.Name,
		sp.Description,
		sp.Price,
		sp.Type,
		sp.StartDate,
		sp.EndDate,
		sp.IsActive,
	)

	created, err := scanSpecial(row)
	if err != nil {
		return store.FromPg(err, "failed to create special")
	}
	*sp = *created
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch map[string]any) (*Special, error) {
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
		`UPDATE specials SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), i, specialColumns,
	)

	sp, err := scanSpecial(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, store.FromPg(err, "special not found")
	}
	return sp, nil
}

func (r *PostgresRepository) DeactivateByName(ctx context.Context, nameSub string) ([]*Special, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE specials
		SET is_active = FALSE, updated_at = now()
		WHERE name ILIKE '%' || $1 || '%'
		RETURNING `+specialColumns,
		nameSub,
	)
	if err != nil {
		return nil, store.FromPg(err, "failed to update specials")
	}
	defer rows.Close()

	specials := make([]*Special, 0)
	for rows.Next() {
		sp, err := scanSpecial(rows)
		if err != nil {
			return nil, err
		}
		specials = append(specials, sp)
	}
	return specials, rows.Err()
}
