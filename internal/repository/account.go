package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lovematch/backend/internal/db"
	"github.com/lovematch/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type accountRepository struct {
	db *sqlx.DB
}

func newAccountRepository(db *sqlx.DB) *accountRepository {
	return &accountRepository{
		db: db,
	}
}

const accountColumns = `id, full_name, email, password, role, verified, pin,
	verify_otp, verify_otp_expire_at, reset_otp, reset_otp_expire_at, reset_otp_verified_at,
	created_at, updated_at`

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const op = "repository.account.Create"

	const query = `
	INSERT INTO account (id, full_name, email, password, role, verified, verify_otp, verify_otp_expire_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.FullName,
		account.Email,
		account.Password,
		account.Role,
		account.Verified,
		account.VerifyOtp,
		account.VerifyOtpExpireAt,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("%s: insert account failed: %w", op, err)
	}

	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const op = "repository.account.GetByEmail"

	query := `SELECT ` + accountColumns + ` FROM account WHERE email = ?`

	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select account by email failed: %w", op, err)
	}

	return &account, nil
}

func (r *accountRepository) GetByPin(ctx context.Context, pin string) (*domain.Account, error) {
	const op = "repository.account.GetByPin"

	query := `SELECT ` + accountColumns + ` FROM account WHERE pin = ?`

	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, pin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select account by pin failed: %w", op, err)
	}

	return &account, nil
}

func (r *accountRepository) SetVerified(ctx context.Context, id uuid.UUID, pin string) error {
	const op = "repository.account.SetVerified"

	const query = `
	UPDATE account
	SET verified = true, pin = ?, verify_otp = NULL, verify_otp_expire_at = NULL
	WHERE id = uuid_to_bin(?)
	`

	res, err := r.db.ExecContext(ctx, query, pin, id)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("%s: update account failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *accountRepository) UpdateVerifyOtp(ctx context.Context, id uuid.UUID, otp string, expireAt time.Time) error {
	const op = "repository.account.UpdateVerifyOtp"

	const query = `
	UPDATE account SET verify_otp = ?, verify_otp_expire_at = ? WHERE id = uuid_to_bin(?)
	`

	if _, err := r.db.ExecContext(ctx, query, otp, expireAt, id); err != nil {
		return fmt.Errorf("%s: update verify otp failed: %w", op, err)
	}

	return nil
}

func (r *accountRepository) UpdateResetOtp(ctx context.Context, id uuid.UUID, otp string, expireAt time.Time) error {
	const op = "repository.account.UpdateResetOtp"

	const query = `
	UPDATE account
	SET reset_otp = ?, reset_otp_expire_at = ?, reset_otp_verified_at = NULL
	WHERE id = uuid_to_bin(?)
	`

	if _, err := r.db.ExecContext(ctx, query, otp, expireAt, id); err != nil {
		return fmt.Errorf("%s: update reset otp failed: %w", op, err)
	}

	return nil
}

func (r *accountRepository) MarkResetOtpVerified(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error {
	const op = "repository.account.MarkResetOtpVerified"

	const query = `
	UPDATE account SET reset_otp_verified_at = ? WHERE id = uuid_to_bin(?)
	`

	if _, err := r.db.ExecContext(ctx, query, verifiedAt, id); err != nil {
		return fmt.Errorf("%s: mark reset otp verified failed: %w", op, err)
	}

	return nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	const op = "repository.account.UpdatePassword"

	const query = `
	UPDATE account
	SET password = ?, reset_otp = NULL, reset_otp_expire_at = NULL, reset_otp_verified_at = NULL
	WHERE id = uuid_to_bin(?)
	`

	res, err := r.db.ExecContext(ctx, query, password, id)
	if err != nil {
		return fmt.Errorf("%s: update password failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.account.Delete"

	const query = `DELETE FROM account WHERE id = uuid_to_bin(?)`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("%s: delete account failed: %w", op, err)
	}

	return nil
}

func (r *accountRepository) DeleteExpiredUnverified(ctx context.Context, email string) error {
	const op = "repository.account.DeleteExpiredUnverified"

	// No error when nothing matches: the account may have been verified
	// or re-issued a fresh OTP since the purge was scheduled.
	const query = `
	DELETE FROM account
	WHERE email = ? AND verified = false AND verify_otp_expire_at < ?
	`

	if _, err := r.db.ExecContext(ctx, query, email, time.Now()); err != nil {
		return fmt.Errorf("%s: delete expired unverified account failed: %w", op, err)
	}

	return nil
}
