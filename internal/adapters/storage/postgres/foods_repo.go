package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-nutrition/internal/domain/foods"
)

const foodColumns = `
	id, owner_user_id,
	name, brand, species,
	calories_per_kg, serving_unit, serving_grams,
	created_at, updated_at`

type FoodsRepo struct {
	db *sql.DB
}

func NewFoodsRepo(db *sql.DB) *FoodsRepo {
	return &FoodsRepo{db: db}
}

func (r *FoodsRepo) Create(ctx context.Context, f foods.Food) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO foods (`+foodColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		f.ID,
		f.OwnerUserID,
		f.Name,
		f.Brand,
		f.Species,
		f.CaloriesPerKg,
		string(f.ServingUnit),
		f.ServingGrams,
		f.CreatedAt,
		f.UpdatedAt,
	)
	return err
}

func (r *FoodsRepo) GetByID(ctx context.Context, id string) (foods.Food, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return foods.Food{}, foods.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+foodColumns+` FROM foods WHERE id = $1`, id)

	f, err := scanFood(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return foods.Food{}, foods.ErrNotFound
		}
		return foods.Food{}, err
	}
	return f, nil
}

// ListVisible: catálogo compartido (owner vacío) + productos del usuario.
func (r *FoodsRepo) ListVisible(ctx context.Context, userID string) ([]foods.Food, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+foodColumns+`
		FROM foods
		WHERE owner_user_id = '' OR owner_user_id = $1
		ORDER BY (owner_user_id = '') DESC, brand ASC, name ASC
	`, strings.TrimSpace(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]foods.Food, 0)
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func scanFood(s rowScanner) (foods.Food, error) {
	var f foods.Food
	var unit string
	if err := s.Scan(
		&f.ID,
		&f.OwnerUserID,
		&f.Name,
		&f.Brand,
		&f.Species,
		&f.CaloriesPerKg,
		&unit,
		&f.ServingGrams,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return foods.Food{}, err
	}
	f.ServingUnit = foods.ServingUnit(unit)
	return f, nil
}
