package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MobMissions_Go/internal/logger"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
	now    func() time.Time
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{
		db:     db,
		config: config,
		now:    time.Now,
	}
}

// CheckCooldown checks if a character's action is on cooldown (unlocked read)
func (b *postgresBackend) CheckCooldown(ctx context.Context, characterID, action string, window time.Duration) (bool, time.Duration, error) {
	if b.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action, "characterID", characterID)
		return false, 0, nil
	}
	if window <= 0 {
		return false, 0, nil
	}

	lastUsed, err := b.getLastUsed(ctx, characterID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}

	onCooldown, remaining := b.checkCooldownInternal(b.now(), lastUsed, window)
	return onCooldown, remaining, nil
}

// RecordUse writes the cooldown timestamp under an advisory lock so concurrent
// completions for the same action serialize
func (b *postgresBackend) RecordUse(ctx context.Context, characterID, action string, at time.Time) error {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashCharacterAction(characterID, action)); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	if _, err := tx.Exec(ctx, SQLUpsertCooldown, characterID, action, at); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgCooldownRecorded, "action", action, "characterID", characterID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, characterID, action string) error {
	_, err := b.db.Exec(ctx, SQLDeleteCooldown, characterID, action)
	if err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetLastUsed returns when action was last performed
func (b *postgresBackend) GetLastUsed(ctx context.Context, characterID, action string) (*time.Time, error) {
	return b.getLastUsed(ctx, characterID, action)
}

func (b *postgresBackend) getLastUsed(ctx context.Context, characterID, action string) (*time.Time, error) {
	var lastUsed time.Time

	err := b.db.QueryRow(ctx, SQLSelectLastUsed, characterID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No cooldown record
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	return &lastUsed, nil
}

// hashCharacterAction creates a consistent int64 hash from characterID + action for advisory locking
func hashCharacterAction(characterID, action string) int64 {
	h := sha256.Sum256([]byte(characterID + HashSeparator + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

func (b *postgresBackend) checkCooldownInternal(now time.Time, lastUsed *time.Time, window time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < window {
		return true, window - elapsed
	}

	return false, 0
}
