package repository

import (
	"context"
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

// AppointmentsChannel is the pg_notify channel fired on every appointment
// insert or update. Listeners refetch the whole list, so the payload only
// says what happened, not what changed.
const AppointmentsChannel = "appointments_changes"

func (r *Repository) CreateAppointment(apt *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// booking_number comes from its own sequence so it stays strictly
	// increasing even when inserts race. uq_appointments_slot rejects a
	// second pending/confirmed booking for the same stylist, date and time.
	query := `
		INSERT INTO appointments
			(barber_name, customer_name, customer_phone, customer_email, service, date, time, status, price, duration, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, booking_number, created_at, updated_at, version
	`

	args := []any{
		apt.BarberName,
		apt.CustomerName,
		apt.CustomerPhone,
		apt.CustomerEmail,
		apt.Service,
		apt.Date,
		apt.Time,
		apt.Status,
		apt.Price,
		apt.Duration,
		apt.Notes,
	}
	dst := []any{&apt.ID, &apt.BookingNumber, &apt.CreatedAt, &apt.UpdatedAt, &apt.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, 'INSERT')`, AppointmentsChannel); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetAllAppointments() ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, barber_name, customer_name, customer_phone, customer_email, service, date, time, status, price, duration, booking_number, notes, created_at, updated_at, version
		FROM appointments
		ORDER BY date, time, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		apt := &domain.Appointment{}
		dst := []any{
			&apt.ID,
			&apt.BarberName,
			&apt.CustomerName,
			&apt.CustomerPhone,
			&apt.CustomerEmail,
			&apt.Service,
			&apt.Date,
			&apt.Time,
			&apt.Status,
			&apt.Price,
			&apt.Duration,
			&apt.BookingNumber,
			&apt.Notes,
			&apt.CreatedAt,
			&apt.UpdatedAt,
			&apt.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *Repository) GetAppointmentByID(id int64) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT barber_name, customer_name, customer_phone, customer_email, service, date, time, status, price, duration, booking_number, notes, created_at, updated_at, version
		FROM appointments WHERE id = $1
	`

	apt := &domain.Appointment{
		ID: id,
	}

	dst := []any{
		&apt.BarberName,
		&apt.CustomerName,
		&apt.CustomerPhone,
		&apt.CustomerEmail,
		&apt.Service,
		&apt.Date,
		&apt.Time,
		&apt.Status,
		&apt.Price,
		&apt.Duration,
		&apt.BookingNumber,
		&apt.Notes,
		&apt.CreatedAt,
		&apt.UpdatedAt,
		&apt.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return apt, nil
}

// GetBlockingSlots returns the start label and duration snapshot of every
// pending or confirmed appointment for the stylist on the given date.
// Cancelled and completed appointments never block slots.
func (r *Repository) GetBlockingSlots(barberName string, date string) ([]domain.BlockingSlot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT time, duration
		FROM appointments
		WHERE barber_name = $1 AND date = $2 AND status IN ($3, $4)
	`

	rows, err := r.dbpool.QueryContext(ctx, query, barberName, date, domain.StatusPending, domain.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]domain.BlockingSlot, 0)
	for rows.Next() {
		var slot domain.BlockingSlot
		if err := rows.Scan(&slot.Time, &slot.Duration); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *Repository) UpdateAppointmentStatus(apt *domain.Appointment) error {
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
		UPDATE appointments
		SET
			status = $1,
			updated_at = now(),
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	args := []any{apt.Status, apt.ID, apt.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&apt.UpdatedAt, &apt.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, 'UPDATE')`, AppointmentsChannel); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) UpdateAppointmentNotes(apt *domain.Appointment) error {
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
		UPDATE appointments
		SET
			notes = $1,
			updated_at = now(),
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	args := []any{apt.Notes, apt.ID, apt.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&apt.UpdatedAt, &apt.Version); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, 'UPDATE')`, AppointmentsChannel); err != nil {
		return err
	}

	return tx.Commit()
}

// PurgeExpiredCancelled deletes cancelled appointments whose date has passed.
// Housekeeping only; this is not a status transition.
func (r *Repository) PurgeExpiredCancelled(before string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM appointments WHERE status = $1 AND date < $2
	`

	res, err := r.dbpool.ExecContext(ctx, query, domain.StatusCancelled, before)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
