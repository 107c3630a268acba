package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-nutrition/internal/domain/events"
	"pet-nutrition/internal/domain/events/details"
)

const eventColumns = `
	id, pet_id,
	type, occurred_at, recorded_at,
	title, notes,
	measurement_kind, measurement_value, measurement_unit,
	actor_type, actor_id,
	source, visibility,
	status`

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.PetEvent) error {
	var kind, unit sql.NullString
	var value sql.NullFloat64
	if e.Measurement != nil {
		kind = sql.NullString{String: string(e.Measurement.Kind), Valid: true}
		value = sql.NullFloat64{Float64: e.Measurement.Value, Valid: true}
		unit = sql.NullString{String: string(e.Measurement.Unit), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_events (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		e.ID,
		e.PetID,
		string(e.Type),
		e.OccurredAt,
		e.RecordedAt,
		e.Title,
		e.Notes,
		kind,
		value,
		unit,
		string(e.Actor.Type),
		e.Actor.ID,
		string(e.Source),
		string(e.Visibility),
		string(e.Status),
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.PetEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.PetEvent{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM pet_events WHERE id = $1`, id)

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.PetEvent{}, events.ErrNotFound
		}
		return events.PetEvent{}, err
	}
	return e, nil
}

func (r *EventsRepo) ListByPet(ctx context.Context, petID string, filter events.ListFilter) ([]events.PetEvent, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + eventColumns + ` FROM pet_events WHERE pet_id = $1`)

	args := []any{petID}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.ActiveOnly {
		sb.WriteString(" AND status = 'active'")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND occurred_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	// q: búsqueda simple en title + notes
	if strings.TrimSpace(filter.Query) != "" {
		sb.WriteString(fmt.Sprintf(" AND (title ILIKE $%d OR notes ILIKE $%d)", argN, argN))
		args = append(args, "%"+strings.TrimSpace(filter.Query)+"%")
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY occurred_at DESC, recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.PetEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *EventsRepo) Void(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pet_events
		SET status = 'voided'
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func scanEvent(s rowScanner) (events.PetEvent, error) {
	var e events.PetEvent
	var typ, actorType, source, vis, status string
	var kind, unit sql.NullString
	var value sql.NullFloat64

	if err := s.Scan(
		&e.ID,
		&e.PetID,
		&typ,
		&e.OccurredAt,
		&e.RecordedAt,
		&e.Title,
		&e.Notes,
		&kind,
		&value,
		&unit,
		&actorType,
		&e.Actor.ID,
		&source,
		&vis,
		&status,
	); err != nil {
		return events.PetEvent{}, err
	}

	e.Type = events.EventType(typ)
	e.Actor.Type = events.ActorType(actorType)
	e.Source = events.Source(source)
	e.Visibility = events.Visibility(vis)
	e.Status = events.EventStatus(status)

	if kind.Valid && value.Valid {
		e.Measurement = &details.Measurement{
			Kind:  details.MeasurementKind(kind.String),
			Value: value.Float64,
			Unit:  details.Unit(unit.String),
		}
	}
	return e, nil
}
