package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

func (r *Repository) GetUnavailability(barberName string, date string) (*domain.Unavailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, is_full_day, reason, created_at, version
		FROM unavailability
		WHERE barber_name = $1 AND date = $2
	`

	u := &domain.Unavailability{
		BarberName: barberName,
		Date:       date,
	}

	dst := []any{&u.ID, &u.IsFullDay, &u.Reason, &u.CreatedAt, &u.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, barberName, date).Scan(dst...); err != nil {
		return nil, err
	}

	slots, err := r.getUnavailabilitySlots(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.TimeSlots = slots

	return u, nil
}

func (r *Repository) getUnavailabilitySlots(ctx context.Context, unavailabilityID int64) ([]string, error) {
	query := `
		SELECT time FROM unavailability_slots
		WHERE unavailability_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, unavailabilityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *Repository) GetUnavailabilityByBarber(barberName string) ([]*domain.Unavailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			u.id,
			u.date,
			u.is_full_day,
			u.reason,
			u.created_at,
			u.version,
			us.time
		FROM unavailability u
		LEFT JOIN unavailability_slots us ON u.id = us.unavailability_id
		WHERE u.barber_name = $1
		ORDER BY u.date, us.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, barberName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recordsMap := make(map[int64]*domain.Unavailability)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			Date      string
			IsFullDay bool
			Reason    string
			CreatedAt time.Time
			Version   int32

			Time sql.NullString
		}

		dst := []any{&row.ID, &row.Date, &row.IsFullDay, &row.Reason, &row.CreatedAt, &row.Version, &row.Time}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		u, exists := recordsMap[row.ID]
		if !exists {
			u = &domain.Unavailability{
				ID:         row.ID,
				BarberName: barberName,
				Date:       row.Date,
				TimeSlots:  make([]string, 0),
				IsFullDay:  row.IsFullDay,
				Reason:     row.Reason,
				CreatedAt:  row.CreatedAt,
				Version:    row.Version,
			}
			recordsMap[row.ID] = u
			order = append(order, row.ID)
		}

		// a record with no slot rows is a full-day block with no detail
		if !row.Time.Valid {
			continue
		}

		u.TimeSlots = append(u.TimeSlots, row.Time.String)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]*domain.Unavailability, 0, len(order))
	for _, id := range order {
		records = append(records, recordsMap[id])
	}

	return records, nil
}

// SetUnavailability upserts by (barber_name, date): the existing record is
// updated in place and its slot rows replaced, otherwise a new record is
// inserted. Two records can never exist for the same stylist and date.
func (r *Repository) SetUnavailability(u *domain.Unavailability) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE unavailability
		SET
			is_full_day = $1,
			reason = $2,
			version = version + 1
		WHERE barber_name = $3 AND date = $4
		RETURNING id, created_at, version
	`

	args := []any{u.IsFullDay, u.Reason, u.BarberName, u.Date}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.Version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query = `
			INSERT INTO unavailability (barber_name, date, is_full_day, reason)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, version
		`
		args = []any{u.BarberName, u.Date, u.IsFullDay, u.Reason}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.Version); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	// replace the slot set wholesale; last write wins
	if _, err := tx.ExecContext(ctx, `DELETE FROM unavailability_slots WHERE unavailability_id = $1`, u.ID); err != nil {
		return err
	}

	for _, slot := range u.TimeSlots {
		query = `
			INSERT INTO unavailability_slots (unavailability_id, time)
			VALUES ($1, $2)
		`
		if _, err := tx.ExecContext(ctx, query, u.ID, slot); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *Repository) DeleteUnavailability(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM unavailability WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
