package mysql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"garment-ledger/internal/storage"
)

const entryColumns = `id, worker_name, io_number, work_type, pieces, quantity,
	rate_per_piece, line_total, advance, esi_deduction, carry_over,
	extra_amount, phone_number, created_at`

func (s *Storage) GetAllEntries(ctx context.Context) ([]storage.Entry, error) {
	const op = "storage.mysql.GetAllEntries"

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM labour_entries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []storage.Entry
	for rows.Next() {
		var e storage.Entry
		err := rows.Scan(
			&e.ID, &e.WorkerName, &e.IONumber, &e.WorkType, &e.Pieces,
			&e.Quantity, &e.RatePerPiece, &e.LineTotal, &e.Advance,
			&e.ESIDeduction, &e.CarryOver, &e.ExtraAmount, &e.PhoneNumber,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// SaveEntries inserts one submission batch atomically. The adjustments and
// phone number go on the first line only; the rest get zeros so summing a
// worker's rows never double-counts them.
func (s *Storage) SaveEntries(ctx context.Context, req storage.SaveEntries) error {
	const op = "storage.mysql.SaveEntries"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO labour_entries
		(worker_name, io_number, work_type, pieces, quantity, rate_per_piece,
		 line_total, advance, esi_deduction, carry_over, extra_amount, phone_number)
		VALUES (?, ?, ?, ?, 1, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for i, work := range req.Works {
		advance, esi, carry, extra := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
		phone := ""
		if i == 0 {
			advance, esi, carry, extra = req.Advance, req.ESIDeduction, req.CarryOver, req.ExtraAmount
			phone = req.PhoneNumber
		}

		_, err := stmt.ExecContext(ctx,
			req.WorkerName, work.IONumber, work.WorkType, work.Pieces,
			work.RatePerPiece, work.LineTotal(),
			advance, esi, carry, extra, phone,
		)
		if err != nil {
			return fmt.Errorf("%s: insert work %d for %s: %w", op, i, req.WorkerName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// ImportEntries inserts already-normalized rows decoded from legacy labels.
// Unlike SaveEntries each row keeps its own adjustment values.
func (s *Storage) ImportEntries(ctx context.Context, entries []storage.Entry) error {
	const op = "storage.mysql.ImportEntries"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO labour_entries
		(worker_name, io_number, work_type, pieces, quantity, rate_per_piece,
		 line_total, advance, esi_deduction, carry_over, extra_amount, phone_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for i, e := range entries {
		_, err := stmt.ExecContext(ctx,
			e.WorkerName, e.IONumber, e.WorkType, e.Pieces, e.Quantity,
			e.RatePerPiece, e.LineTotal, e.Advance, e.ESIDeduction,
			e.CarryOver, e.ExtraAmount, e.PhoneNumber,
		)
		if err != nil {
			return fmt.Errorf("%s: insert row %d: %w", op, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateEntry(ctx context.Context, id int64, req storage.UpdateEntry) error {
	const op = "storage.mysql.UpdateEntry"

	lineTotal := req.RatePerPiece.Mul(decimal.NewFromInt(req.Pieces)).Round(2)

	res, err := s.db.ExecContext(ctx, `
		UPDATE labour_entries
		SET io_number = ?, work_type = ?, pieces = ?, rate_per_piece = ?, line_total = ?
		WHERE id = ?
	`, req.IONumber, req.WorkType, req.Pieces, req.RatePerPiece, lineTotal, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: entry %d not found", op, id)
	}

	return nil
}

func (s *Storage) DeleteEntry(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteEntry"

	_, err := s.db.ExecContext(ctx, `DELETE FROM labour_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: id=%d: %w", op, id, err)
	}
	return nil
}

func (s *Storage) DeleteEntriesByIDs(ctx context.Context, ids []int64) error {
	const op = "storage.mysql.DeleteEntriesByIDs"

	if len(ids) == 0 {
		return nil
	}

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `DELETE FROM labour_entries WHERE id IN (` + placeholders(len(ids)) + `)`
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) DeleteAllEntries(ctx context.Context) error {
	const op = "storage.mysql.DeleteAllEntries"

	if _, err := s.db.ExecContext(ctx, `DELETE FROM labour_entries`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
