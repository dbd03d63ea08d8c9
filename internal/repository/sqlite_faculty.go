package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/promotrack/internal/db"
	"github.com/alexanderramin/promotrack/internal/domain"
)

// SQLiteFacultyRepo reads and writes the single faculty row.
type SQLiteFacultyRepo struct {
	db db.DBTX
}

func NewSQLiteFacultyRepo(conn db.DBTX) *SQLiteFacultyRepo {
	return &SQLiteFacultyRepo{db: conn}
}

func (r *SQLiteFacultyRepo) Get(ctx context.Context) (*FacultyRecord, error) {
	query := `SELECT name, degree, current_position, years_of_service, wizard_completed,
		application_status, application_date, updated_at
		FROM faculty WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, db.DefaultFacultyID)

	var rec FacultyRecord
	var position, status, updatedAt string
	var wizard int
	var appDate sql.NullString
	err := row.Scan(
		&rec.Profile.Name,
		&rec.Profile.Degree,
		&position,
		&rec.Profile.YearsOfService,
		&wizard,
		&status,
		&appDate,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("faculty: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning faculty: %w", err)
	}

	rec.Profile.CurrentPosition = domain.Position(position)
	rec.WizardCompleted = intToBool(wizard)
	rec.ApplicationStatus = domain.ApplicationStatus(status)
	rec.ApplicationDate = parseNullableTime(appDate, timestampLayout)
	if t := parseNullableTime(sql.NullString{String: updatedAt, Valid: true}, time.RFC3339); t != nil {
		rec.UpdatedAt = *t
	}
	return &rec, nil
}

// Save overwrites the faculty row, recreating it when it was removed.
func (r *SQLiteFacultyRepo) Save(ctx context.Context, rec *FacultyRecord) error {
	status := rec.ApplicationStatus
	if status == "" {
		status = domain.ApplicationNotApplied
	}
	// An upsert rather than INSERT OR REPLACE: a replace deletes the row
	// first and would cascade into achievements.
	query := `INSERT INTO faculty (id, name, degree, current_position, years_of_service,
		wizard_completed, application_status, application_date, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			degree = excluded.degree,
			current_position = excluded.current_position,
			years_of_service = excluded.years_of_service,
			wizard_completed = excluded.wizard_completed,
			application_status = excluded.application_status,
			application_date = excluded.application_date,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		db.DefaultFacultyID,
		rec.Profile.Name,
		rec.Profile.Degree,
		string(rec.Profile.CurrentPosition),
		rec.Profile.YearsOfService,
		boolToInt(rec.WizardCompleted),
		string(status),
		nullableTimeToString(rec.ApplicationDate, timestampLayout),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving faculty: %w", err)
	}
	return nil
}
