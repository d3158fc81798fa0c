package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"github.com/leadmapr/leadmapr/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (
			id, email, name, password_hash,
			subscription_tier, leads_used_this_month, usage_reset_date,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		u.SubscriptionTier,
		u.LeadsUsedThisMonth,
		u.UsageResetDate,
		u.CreatedAt,
		u.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		log.Printf("[DB] failed to create user: %v", err)
		return err
	}

	return nil
}

const userColumns = `
	id, email, COALESCE(name, ''), password_hash,
	subscription_tier, leads_used_this_month, usage_reset_date,
	COALESCE(dodo_customer_id, ''), COALESCE(dodo_subscription_id, ''),
	created_at, updated_at
`

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) scanUser(row *sql.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.SubscriptionTier,
		&u.LeadsUsedThisMonth,
		&u.UsageResetDate,
		&u.DodoCustomerID,
		&u.DodoSubscriptionID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) ResetUsage(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE users
		SET leads_used_this_month = 0, usage_reset_date = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, at, id)
	return err
}

// IncrementUsage is a single atomic UPDATE. Concurrent exports for the
// same user may race past the quota check, but the counter itself never
// loses an increment.
func (r *UserRepository) IncrementUsage(ctx context.Context, id string, count int) error {
	if count < 0 {
		return fmt.Errorf("usage increment must be non-negative, got %d", count)
	}

	query := `
		UPDATE users
		SET leads_used_this_month = leads_used_this_month + $1, updated_at = NOW()
		WHERE id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, count, id)
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ActivateSubscriptionByEmail(ctx context.Context, email string, tier entity.SubscriptionTier, subscriptionID, customerID string) error {
	query := `
		UPDATE users
		SET subscription_tier = $1,
		    dodo_subscription_id = $2,
		    dodo_customer_id = NULLIF($3, ''),
		    updated_at = NOW()
		WHERE email = $4
	`
	_, err := r.DB.ExecContext(ctx, query, tier, subscriptionID, customerID, email)
	return err
}

func (r *UserRepository) ResetUsageByEmail(ctx context.Context, email string, at time.Time) error {
	query := `
		UPDATE users
		SET leads_used_this_month = 0, usage_reset_date = $1, updated_at = NOW()
		WHERE email = $2
	`
	_, err := r.DB.ExecContext(ctx, query, at, email)
	return err
}

func (r *UserRepository) DowngradeByEmail(ctx context.Context, email string) error {
	query := `
		UPDATE users
		SET subscription_tier = $1, dodo_subscription_id = NULL, updated_at = NOW()
		WHERE email = $2
	`
	_, err := r.DB.ExecContext(ctx, query, entity.TierFree, email)
	return err
}
