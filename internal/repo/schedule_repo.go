package repo

import (
	"context"
	"database/sql"

	dom "github.com/Dr-Min/Scheduler/internal/domain"
)

type ScheduleRepo interface {
	Create(ctx context.Context, s dom.Schedule) (dom.Schedule, error)
	List(ctx context.Context) ([]dom.Schedule, error)
	GetByID(ctx context.Context, id int64) (dom.Schedule, error)
	Update(ctx context.Context, id int64, patch dom.Schedule) (dom.Schedule, error)
	FindOne(ctx context.Context, user, date string) (dom.Schedule, error)
	ListByUser(ctx context.Context, user string) ([]dom.Schedule, error)
}

type SQLiteScheduleRepo struct {
	db *sql.DB
}

func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Create(ctx context.Context, s dom.Schedule) (dom.Schedule, error) {
	query := `
		INSERT INTO schedule (date, user, check_in_time, exercised, reflection)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, date, user, check_in_time, exercised, reflection`
	var out dom.Schedule
	err := r.db.QueryRowContext(ctx, query, s.Date, s.User, s.CheckInTime, s.Exercised, s.Reflection).Scan(
		&out.ID, &out.Date, &out.User, &out.CheckInTime, &out.Exercised, &out.Reflection,
	)
	return out, err
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]dom.Schedule, error) {
	query := `
		SELECT id, date, user, check_in_time, exercised, reflection
		FROM schedule ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Schedule
	for rows.Next() {
		var s dom.Schedule
		if err := rows.Scan(&s.ID, &s.Date, &s.User, &s.CheckInTime, &s.Exercised, &s.Reflection); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SQLiteScheduleRepo) GetByID(ctx context.Context, id int64) (dom.Schedule, error) {
	query := `
		SELECT id, date, user, check_in_time, exercised, reflection
		FROM schedule WHERE id = ?`
	var s dom.Schedule
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Date, &s.User, &s.CheckInTime, &s.Exercised, &s.Reflection,
	)
	return s, err
}

// Update overwrites the three mutable fields with the values in patch.
// date and user never change after creation.
func (r *SQLiteScheduleRepo) Update(ctx context.Context, id int64, patch dom.Schedule) (dom.Schedule, error) {
	query := `
		UPDATE schedule SET check_in_time = ?, exercised = ?, reflection = ?
		WHERE id = ?
		RETURNING id, date, user, check_in_time, exercised, reflection`
	var s dom.Schedule
	err := r.db.QueryRowContext(ctx, query, patch.CheckInTime, patch.Exercised, patch.Reflection, id).Scan(
		&s.ID, &s.Date, &s.User, &s.CheckInTime, &s.Exercised, &s.Reflection,
	)
	return s, err
}

// FindOne returns the earliest entry for the user/date pair; sql.ErrNoRows when absent.
func (r *SQLiteScheduleRepo) FindOne(ctx context.Context, user, date string) (dom.Schedule, error) {
	query := `
		SELECT id, date, user, check_in_time, exercised, reflection
		FROM schedule WHERE user = ? AND date = ? ORDER BY id LIMIT 1`
	var s dom.Schedule
	err := r.db.QueryRowContext(ctx, query, user, date).Scan(
		&s.ID, &s.Date, &s.User, &s.CheckInTime, &s.Exercised, &s.Reflection,
	)
	return s, err
}

func (r *SQLiteScheduleRepo) ListByUser(ctx context.Context, user string) ([]dom.Schedule, error) {
	query := `
		SELECT id, date, user, check_in_time, exercised, reflection
		FROM schedule WHERE user = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Schedule
	for rows.Next() {
		var s dom.Schedule
		if err := rows.Scan(&s.ID, &s.Date, &s.User, &s.CheckInTime, &s.Exercised, &s.Reflection); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
