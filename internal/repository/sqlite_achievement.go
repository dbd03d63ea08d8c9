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

// SQLiteAchievementRepo stores achievement records. Points are never
// persisted; callers rescore after loading.
type SQLiteAchievementRepo struct {
	db db.DBTX
}

func NewSQLiteAchievementRepo(conn db.DBTX) *SQLiteAchievementRepo {
	return &SQLiteAchievementRepo{db: conn}
}

const achievementSelect = `SELECT id, category, title, detail, kind, role, certified, created_at
	FROM achievements`

func (r *SQLiteAchievementRepo) Create(ctx context.Context, a *domain.Achievement) error {
	cols, err := columnsFor(a.Details)
	if err != nil {
		return fmt.Errorf("inserting achievement: %w", err)
	}
	query := `INSERT INTO achievements (id, faculty_id, category, title, detail, kind, role, certified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		db.DefaultFacultyID,
		cols.category,
		cols.title,
		cols.detail,
		cols.kind,
		cols.role,
		cols.certified,
		a.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting achievement: %w", err)
	}
	return nil
}

func (r *SQLiteAchievementRepo) GetByID(ctx context.Context, id string) (*domain.Achievement, error) {
	row := r.db.QueryRowContext(ctx, achievementSelect+` WHERE id = ?`, id)
	a, err := scanAchievement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("achievement %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning achievement: %w", err)
	}
	return a, nil
}

// List returns every achievement in insertion order.
func (r *SQLiteAchievementRepo) List(ctx context.Context) ([]*domain.Achievement, error) {
	rows, err := r.db.QueryContext(ctx, achievementSelect+` WHERE faculty_id = ? ORDER BY created_at, rowid`,
		db.DefaultFacultyID)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()
	return scanAchievements(rows)
}

func (r *SQLiteAchievementRepo) ListByCategory(ctx context.Context, c domain.Category) ([]*domain.Achievement, error) {
	rows, err := r.db.QueryContext(ctx,
		achievementSelect+` WHERE faculty_id = ? AND category = ? ORDER BY created_at, rowid`,
		db.DefaultFacultyID, string(c))
	if err != nil {
		return nil, fmt.Errorf("listing %s achievements: %w", c, err)
	}
	defer rows.Close()
	return scanAchievements(rows)
}

func (r *SQLiteAchievementRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM achievements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting achievement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting achievement: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("achievement %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAchievementRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM achievements WHERE faculty_id = ?`, db.DefaultFacultyID); err != nil {
		return fmt.Errorf("clearing achievements: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAchievement(row rowScanner) (*domain.Achievement, error) {
	var a domain.Achievement
	var cols achievementColumns
	var createdAt string
	if err := row.Scan(&a.ID, &cols.category, &cols.title, &cols.detail, &cols.kind, &cols.role, &cols.certified, &createdAt); err != nil {
		return nil, err
	}
	details, err := cols.details()
	if err != nil {
		return nil, fmt.Errorf("achievement %s: %w", a.ID, err)
	}
	a.Details = details
	if t, err := time.Parse(timestampLayout, createdAt); err == nil {
		a.CreatedAt = t
	}
	return &a, nil
}

func scanAchievements(rows *sql.Rows) ([]*domain.Achievement, error) {
	var out []*domain.Achievement
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning achievement: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating achievements: %w", err)
	}
	return out, nil
}
