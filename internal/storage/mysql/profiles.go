package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"garment-ledger/internal/storage"
)

func (s *Storage) GetProfiles(ctx context.Context, query string) ([]storage.Profile, error) {
	const op = "storage.mysql.GetProfiles"

	baseQuery := `SELECT id, name, phone_number, created_at FROM labour_profiles`
	var rows *sql.Rows
	var err error

	if query != "" {
		like := "%" + query + "%"
		rows, err = s.db.QueryContext(ctx,
			baseQuery+` WHERE name LIKE ? OR phone_number LIKE ? ORDER BY name ASC`, like, like)
	} else {
		rows, err = s.db.QueryContext(ctx, baseQuery+` ORDER BY name ASC`)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var profiles []storage.Profile
	for rows.Next() {
		var p storage.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.PhoneNumber, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (s *Storage) GetProfile(ctx context.Context, id int64) (*storage.Profile, error) {
	const op = "storage.mysql.GetProfile"

	var p storage.Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone_number, created_at FROM labour_profiles WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.PhoneNumber, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: profile %d not found", op, id)
		}
		return nil, fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	return &p, nil
}

func (s *Storage) SaveProfile(ctx context.Context, req storage.SaveProfile) error {
	const op = "storage.mysql.SaveProfile"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO labour_profiles (name, phone_number) VALUES (?, ?)`,
		req.Name, req.PhoneNumber)
	if err != nil {
		return fmt.Errorf("%s: name=%s: %w", op, req.Name, err)
	}
	return nil
}

func (s *Storage) UpdateProfile(ctx context.Context, id int64, req storage.SaveProfile) error {
	const op = "storage.mysql.UpdateProfile"

	res, err := s.db.ExecContext(ctx,
		`UPDATE labour_profiles SET name = ?, phone_number = ? WHERE id = ?`,
		req.Name, req.PhoneNumber, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: profile %d not found", op, id)
	}

	return nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteProfile"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	// History rows belong to the profile, so they go with it.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM labour_salary_history WHERE labour_profile_id = ?`, id); err != nil {
		return fmt.Errorf("%s: delete history for id=%d: %w", op, id, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM labour_profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}
	return nil
}

func (s *Storage) GetSalaryHistory(ctx context.Context, profileID int64) ([]storage.SalaryHistory, error) {
	const op = "storage.mysql.GetSalaryHistory"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, labour_profile_id, weekly_salary, weekly_advance, advance_paid,
		       week_start_date, week_end_date, notes
		FROM labour_salary_history
		WHERE labour_profile_id = ?
		ORDER BY week_start_date DESC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("%s: profile=%d: %w", op, profileID, err)
	}
	defer rows.Close()

	var history []storage.SalaryHistory
	for rows.Next() {
		var h storage.SalaryHistory
		var notes sql.NullString
		err := rows.Scan(&h.ID, &h.ProfileID, &h.WeeklySalary, &h.WeeklyAdvance,
			&h.AdvancePaid, &h.WeekStart, &h.WeekEnd, &notes)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		h.Notes = notes.String
		history = append(history, h)
	}

	return history, rows.Err()
}

func (s *Storage) SaveSalaryHistory(ctx context.Context, profileID int64, req storage.SaveSalaryHistory) error {
	const op = "storage.mysql.SaveSalaryHistory"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO labour_salary_history
		(labour_profile_id, weekly_salary, weekly_advance, advance_paid,
		 week_start_date, week_end_date, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, profileID, req.WeeklySalary, req.WeeklyAdvance, req.AdvancePaid,
		req.WeekStart, req.WeekEnd, nullable(req.Notes))
	if err != nil {
		return fmt.Errorf("%s: profile=%d: %w", op, profileID, err)
	}
	return nil
}
