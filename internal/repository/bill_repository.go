package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
)

var ErrBillNotFound = errors.New("bill not found")

type BillRepository struct {
	pool *pgxpool.Pool
}

func NewBillRepository(pool *pgxpool.Pool) *BillRepository {
	return &BillRepository{pool: pool}
}

func (r *BillRepository) Create(ctx context.Context, bill models.Bill) error {
	const query = `
		INSERT INTO bills (
			id, project_id, user_id, amount, due_date, issued_on, status
		) VALUES (
			$1, $2, $3, $4, $5, NOW(), $6
		)
	`

	_, err := r.pool.Exec(ctx, query,
		bill.ID,
		bill.ProjectID,
		bill.UserID,
		bill.Amount,
		bill.DueDate,
		bill.Status,
	)
	return err
}

func (r *BillRepository) GetByID(ctx context.Context, id string) (models.Bill, error) {
	const query = `
		SELECT id, project_id, user_id, amount, due_date, issued_on, status, paid_on
		FROM bills WHERE id = $1
	`

	bill, err := scanBill(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Bill{}, ErrBillNotFound
		}
		return models.Bill{}, err
	}
	return bill, nil
}

func (r *BillRepository) ListByUser(ctx context.Context, userID string) ([]models.Bill, error) {
	const query = `
		SELECT id, project_id, user_id, amount, due_date, issued_on, status, paid_on
		FROM bills WHERE user_id = $1 ORDER BY issued_on DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *BillRepository) ListAll(ctx context.Context) ([]models.Bill, error) {
	const query = `
		SELECT id, project_id, user_id, amount, due_date, issued_on, status, paid_on
		FROM bills ORDER BY issued_on DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

// ListUnpaidDueBefore returns unpaid bills whose due date has passed; feeds
// the daily admin digest.
func (r *BillRepository) ListUnpaidDueBefore(ctx context.Context, cutoff time.Time) ([]models.Bill, error) {
	const query = `
		SELECT id, project_id, user_id, amount, due_date, issued_on, status, paid_on
		FROM bills WHERE status = $1 AND due_date < $2 ORDER BY due_date ASC
	`

	rows, err := r.pool.Query(ctx, query, models.BillStatusUnpaid, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *BillRepository) MarkPaid(ctx context.Context, id string, paidOn time.Time) error {
	const query = `
		UPDATE bills SET status = $2, paid_on = $3 WHERE id = $1
	`

	cmd, err := r.pool.Exec(ctx, query, id, models.BillStatusPaid, paidOn)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrBillNotFound
	}
	return nil
}

func scanBill(row pgx.Row) (models.Bill, error) {
	var bill models.Bill
	err := row.Scan(
		&bill.ID,
		&bill.ProjectID,
		&bill.UserID,
		&bill.Amount,
		&bill.DueDate,
		&bill.IssuedOn,
		&bill.Status,
		&bill.PaidOn,
	)
	return bill, err
}

func collectBills(rows pgx.Rows) ([]models.Bill, error) {
	var bills []models.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}
