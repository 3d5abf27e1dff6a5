package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"festRegistration/internal/config"
	"festRegistration/internal/models"
	"festRegistration/internal/storage"

	"github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS registrations (
		id           BIGSERIAL PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		phone        TEXT NOT NULL,
		college      TEXT NOT NULL,
		events       TEXT[] NOT NULL,
		total_amount INTEGER NOT NULL,
		submitted    BOOLEAN NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS payments (
		id              BIGSERIAL PRIMARY KEY,
		email           TEXT NOT NULL DEFAULT '',
		amount          INTEGER,
		transaction_id  TEXT NOT NULL DEFAULT '',
		screenshot_name TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS payments_status_created_at_idx ON payments (status, created_at);`

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) SaveRegistration(reg models.Registration) (int64, error) {
	query := `
		INSERT INTO registrations (name, email, phone, college, events, total_amount, submitted)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query,
		reg.Name,
		reg.Email,
		reg.Phone,
		reg.College,
		pq.Array(reg.Events),
		reg.TotalAmount,
		reg.Submitted,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save registration: %w", err)
	}

	return id, nil
}

func (s *Storage) SavePayment(p models.Payment) (int64, error) {
	query := `
		INSERT INTO payments (email, amount, transaction_id, screenshot_name, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var amount sql.NullInt64
	if p.Amount != nil {
		amount = sql.NullInt64{Int64: int64(*p.Amount), Valid: true}
	}

	var id int64
	err := s.DB.QueryRow(query, p.Email, amount, p.TransactionID, p.ScreenshotName, string(p.Status)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save payment: %w", err)
	}

	return id, nil
}

func (s *Storage) GetPayment(id int64) (*models.Payment, error) {
	query := `
		SELECT id, email, amount, transaction_id, screenshot_name, status, created_at
		FROM payments
		WHERE id = $1`

	var (
		p      models.Payment
		amount sql.NullInt64
		status string
	)
	err := s.DB.QueryRow(query, id).Scan(
		&p.ID,
		&p.Email,
		&amount,
		&p.TransactionID,
		&p.ScreenshotName,
		&status,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	if amount.Valid {
		a := int(amount.Int64)
		p.Amount = &a
	}
	p.Status = models.PaymentStatus(status)

	return &p, nil
}

func (s *Storage) UpdatePaymentStatus(id int64, status models.PaymentStatus) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current string
	err = tx.QueryRow(`SELECT status FROM payments WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to check payment: %w", err)
	}

	if models.PaymentStatus(current) != models.PaymentPending {
		return storage.ErrPaymentNotPending
	}

	_, err = tx.Exec(`UPDATE payments SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) ExpirePendingPayments(ttl time.Duration) (int64, error) {
	query := `
		UPDATE payments
		SET status = $1
		WHERE status = $2
		AND created_at < NOW() - make_interval(secs => $3)`

	result, err := s.DB.Exec(query, string(models.PaymentFailed), string(models.PaymentPending), ttl.Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending payments: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count expired payments: %w", err)
	}

	return rowsAffected, nil
}
