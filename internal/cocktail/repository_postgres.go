package cocktail

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

const cocktailColumns = `id, name, ingredients, recipe, price, type, is_signature, is_86d, created_at, updated_at`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCocktail(row pgx.Row) (*Cocktail, error) {
	var ck Cocktail
	if err := row.Scan(
		&ck.ID,
		&ck.Name,
		&ck.Ingredients,
		&ck.Recipe,
		&ck.Price,
		&ck.Type,
		&ck.IsSignature,
		&ck.Is86d,
		&ck.CreatedAt,
		&ck.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ck, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Cocktail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+cocktailColumns+`
		FROM cocktails
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, store.FromPg(err, "failed to fetch cocktails")
	}
	defer rows.Close()

	cocktails := make([]*Cocktail, 0)
	for rows.Next() {
		ck, err := scanCocktail(rows)
		if err != nil {
			return nil, err
		}
		cocktails = append(cocktails, ck)
	}
	return cocktails, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, ck *Cocktail) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO cocktails (name, ingredients, recipe, price, type, is_signature, is_86d)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+cocktailColumns,
		ck.Name,
		ck.Ingredients,
		ck.Recipe,
		ck.Price,
		ck.Type,
		ck.IsSignature,
		ck.Is86d,
	)

	created, err := scanCocktail(row)
	if err != nil {
		return store.FromPg(err, "failed to create cocktail")
	}
	*ck = *created
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch map[string]any) (*Cocktail, error) {
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
		`UPDATE cocktails SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), i, cocktailColumns,
	)

	ck, err := scanCocktail(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, store.FromPg(err, "cocktail not found")
	}
	return ck, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cocktails WHERE id = $1`, id)
	return store.FromPg(err, "failed to delete cocktail")
}

func (r *PostgresRepository) SetEightySixed(ctx context.Context, nameSub string, down bool) ([]*Cocktail, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE cocktails
		SET is_86d = $1, updated_at = now()
		WHERE name ILIKE '%' || $2 || '%'
		RETURNING `+cocktailColumns,
		down, nameSub,
	)
	if err != nil {
		return nil, store.FromPg(err, "failed to update cocktails")
	}
	defer rows.Close()

	cocktails := make([]*Cocktail, 0)
	for rows.Next() {
		ck, err := scanCocktail(rows)
		if err != nil {
			return nil, err
		}
		cocktails = append(cocktails, ck)
	}
	return cocktails, rows.Err()
}
