package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"garment-ledger/internal/storage"
)

func (s *Storage) GetAllAdvances(ctx context.Context) ([]storage.Advance, error) {
	const op = "storage.mysql.GetAllAdvances"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, labour_name, advance_amount, paid_amount, advance_date, notes
		FROM labour_advances
		ORDER BY advance_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var advances []storage.Advance
	for rows.Next() {
		var a storage.Advance
		var notes sql.NullString
		if err := rows.Scan(&a.ID, &a.WorkerName, &a.Amount, &a.PaidAmount, &a.AdvanceDate, &notes); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		a.Notes = notes.String
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (s *Storage) GetAdvancesByWorker(ctx context.Context, workerName string) ([]storage.Advance, error) {
	const op = "storage.mysql.GetAdvancesByWorker"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, labour_name, advance_amount, paid_amount, advance_date, notes
		FROM labour_advances
		WHERE labour_name = ?
		ORDER BY advance_date DESC
	`, workerName)
	if err != nil {
		return nil, fmt.Errorf("%s: worker=%s: %w", op, workerName, err)
	}
	defer rows.Close()

	var advances []storage.Advance
	for rows.Next() {
		var a storage.Advance
		var notes sql.NullString
		if err := rows.Scan(&a.ID, &a.WorkerName, &a.Amount, &a.PaidAmount, &a.AdvanceDate, &notes); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		a.Notes = notes.String
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (s *Storage) SaveAdvance(ctx context.Context, req storage.SaveAdvance) error {
	const op = "storage.mysql.SaveAdvance"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO labour_advances (labour_name, advance_amount, paid_amount, advance_date, notes)
		VALUES (?, ?, 0, ?, ?)
	`, req.WorkerName, req.Amount, req.AdvanceDate, nullable(req.Notes))
	if err != nil {
		return fmt.Errorf("%s: worker=%s: %w", op, req.WorkerName, err)
	}
	return nil
}

func (s *Storage) UpdateAdvance(ctx context.Context, id int64, req storage.UpdateAdvance) error {
	const op = "storage.mysql.UpdateAdvance"

	res, err := s.db.ExecContext(ctx, `
		UPDATE labour_advances
		SET labour_name = ?, advance_amount = ?, paid_amount = ?, advance_date = ?, notes = ?
		WHERE id = ?
	`, req.WorkerName, req.Amount, req.PaidAmount, req.AdvanceDate, nullable(req.Notes), id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: advance %d not found", op, id)
	}

	return nil
}

func (s *Storage) DeleteAdvance(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteAdvance"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM labour_advances WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
