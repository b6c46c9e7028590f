package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/mission"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

// MissionRepository implements repository.Mission on PostgreSQL. The mission
// definition and runtime state live in a JSONB column; status, collected and
// deadline are mirrored into columns for filtering and compare-and-set updates.
type MissionRepository struct {
	db *pgxpool.Pool
}

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository(db *pgxpool.Pool) *MissionRepository {
	return &MissionRepository{db: db}
}

func (r *MissionRepository) GetCharacter(ctx context.Context, characterID uuid.UUID) (*domain.Character, error) {
	return getCharacter(ctx, r.db, characterID, false)
}

func (r *MissionRepository) GetCrewMembers(ctx context.Context, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error) {
	return getCrewMembers(ctx, r.db, characterID, crewIDs)
}

func (r *MissionRepository) GetMission(ctx context.Context, characterID, missionID uuid.UUID) (*domain.Mission, error) {
	m, err := scanMission(r.db.QueryRow(ctx, sqlGetMission, missionID, characterID))
	if err != nil {
		return nil, missionLookupError(err, missionID)
	}
	return m, nil
}

func (r *MissionRepository) ListMissions(ctx context.Context, characterID uuid.UUID, filter domain.MissionFilter) ([]domain.Mission, error) {
	return queryMissions(ctx, r.db, sqlListMissions, characterID, string(filter.Status), string(filter.Type))
}

func (r *MissionRepository) GetInProgressMissions(ctx context.Context) ([]domain.Mission, error) {
	return queryMissions(ctx, r.db, sqlGetInProgressMissions)
}

// CreateMissions inserts missions in one batch, skipping keys the character already has
func (r *MissionRepository) CreateMissions(ctx context.Context, missions []domain.Mission) (int64, error) {
	if len(missions) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range missions {
		args, err := missionArgs(&missions[i])
		if err != nil {
			return 0, err
		}
		batch.Queue(sqlInsertMission, args...)
	}

	results := r.db.SendBatch(ctx, batch)
	var inserted int64
	for range missions {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return inserted, fmt.Errorf("failed to insert mission: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return inserted, fmt.Errorf("failed to close mission batch: %w", err)
	}
	return inserted, nil
}

// BeginMissionTx starts a transaction for a mission state change
func (r *MissionRepository) BeginMissionTx(ctx context.Context) (repository.MissionTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &missionTx{tx: tx}, nil
}

// missionTx implements repository.MissionTx
type missionTx struct {
	tx pgx.Tx
}

func (t *missionTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *missionTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *missionTx) GetCharacterForUpdate(ctx context.Context, characterID uuid.UUID) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, characterID, true)
}

func (t *missionTx) GetMissionForUpdate(ctx context.Context, missionID uuid.UUID) (*domain.Mission, error) {
	m, err := scanMission(t.tx.QueryRow(ctx, sqlGetMissionForUpdate, missionID))
	if err != nil {
		return nil, missionLookupError(err, missionID)
	}
	return m, nil
}

func (t *missionTx) GetCrewMembers(ctx context.Context, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error) {
	return getCrewMembers(ctx, t.tx, characterID, crewIDs)
}

// UpdateMissionIfStatus writes m only while the stored status still equals expected
func (t *missionTx) UpdateMissionIfStatus(ctx context.Context, m *domain.Mission, expected domain.MissionStatus) (int64, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return 0, fmt.Errorf("failed to encode mission: %w", err)
	}
	tag, err := t.tx.Exec(ctx, sqlUpdateMissionIfStatus,
		m.ID, string(m.Status), m.Collected, deadlineOf(m), data, m.UpdatedAt, string(expected))
	if err != nil {
		return 0, fmt.Errorf("failed to update mission: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (t *missionTx) ApplyCharacterDelta(ctx context.Context, characterID uuid.UUID, delta domain.CharacterDelta) error {
	return applyCharacterDelta(ctx, t.tx, characterID, delta)
}

func (t *missionTx) SetCharacterHealth(ctx context.Context, characterID uuid.UUID, health int) error {
	return setCharacterHealth(ctx, t.tx, characterID, health)
}

func (t *missionTx) AddInventoryItems(ctx context.Context, characterID uuid.UUID, itemIDs []string) error {
	return addInventoryItems(ctx, t.tx, characterID, itemIDs)
}

func (t *missionTx) IncrementCompletedMissions(ctx context.Context, characterID uuid.UUID, category string) error {
	return incrementCompletedMissions(ctx, t.tx, characterID, category)
}

func (t *missionTx) AddCrewExperience(ctx context.Context, crewIDs []uuid.UUID, amount int) error {
	return addCrewExperience(ctx, t.tx, crewIDs, amount)
}

func (t *missionTx) AddTerritoryInfluence(ctx context.Context, territoryID string, amount int) error {
	return addTerritoryInfluence(ctx, t.tx, territoryID, amount)
}

func (t *missionTx) GrantTerritoryControl(ctx context.Context, characterID uuid.UUID, territoryID string, amount int) error {
	return grantTerritoryControl(ctx, t.tx, characterID, territoryID, amount)
}

func queryMissions(ctx context.Context, q querier, sql string, args ...any) ([]domain.Mission, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapDB(ErrMsgFailedToGetMission, err)
	}
	defer rows.Close()

	var missions []domain.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB(ErrMsgFailedToGetMission, err)
	}
	return missions, nil
}

// scanMission decodes a row and validates the stored definition so a corrupted
// record never reaches the engine
func scanMission(row pgx.Row) (*domain.Mission, error) {
	var (
		id, characterID      uuid.UUID
		status               string
		collected            bool
		data                 []byte
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &characterID, &status, &collected, &data, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var m domain.Mission
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToDecodeMission, id, err)
	}
	m.ID = id
	m.CharacterID = characterID
	m.Status = domain.MissionStatus(status)
	m.Collected = collected
	m.CreatedAt = createdAt
	m.UpdatedAt = updatedAt

	if err := mission.Validate(&m); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgStoredMissionInvalid, id, err)
	}
	return &m, nil
}

func missionArgs(m *domain.Mission) ([]any, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mission %s: %w", m.Key, err)
	}
	return []any{
		m.ID, m.CharacterID, m.Key, string(m.Type), string(m.Status),
		m.Collected, deadlineOf(m), data, m.CreatedAt, m.UpdatedAt,
	}, nil
}

func deadlineOf(m *domain.Mission) *time.Time {
	if m.Status != domain.MissionStatusInProgress || m.Progress == nil {
		return nil
	}
	d := m.Progress.Deadline
	return &d
}

func missionLookupError(err error, missionID uuid.UUID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrMissionNotFound, missionID)
	}
	if errors.Is(err, domain.ErrInvalidMission) {
		return err
	}
	return wrapDB(ErrMsgFailedToGetMission, err)
}
