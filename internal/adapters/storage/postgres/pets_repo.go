package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-nutrition/internal/domain/pets"
)

const petColumns = `
	id, owner_user_id,
	name, species, breed, sex, reproductive_status,
	birth_date, microchip, notes,
	created_at, updated_at`

// rowScanner lo cumplen *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		string(p.Species),
		p.Breed,
		string(p.Sex),
		string(p.ReproductiveStatus),
		toNullDate(p.BirthDate),
		p.Microchip,
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			sex = $5,
			reproductive_status = $6,
			birth_date = $7,
			microchip = $8,
			notes = $9,
			updated_at = $10
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		string(p.Sex),
		string(p.ReproductiveStatus),
		toNullDate(p.BirthDate),
		p.Microchip,
		p.Notes,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, name ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var species, sex, repro string
	var bd sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&species,
		&p.Breed,
		&sex,
		&repro,
		&bd,
		&p.Microchip,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Sex = pets.Sex(sex)
	p.ReproductiveStatus = pets.ReproductiveStatus(repro)
	if bd.Valid {
		// birth_date es DATE: pgx lo entrega como medianoche UTC
		t := bd.Time.UTC()
		p.BirthDate = &t
	}
	return p, nil
}

func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
