package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FinHubBR/finhub_backend/internal/apperrors"
	"github.com/FinHubBR/finhub_backend/internal/core/domain"
	"github.com/FinHubBR/finhub_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileStateRepository persists each profile tree as one JSONB document per
// (user, profile) row with a version counter for optimistic concurrency.
type ProfileStateRepository struct {
	db *pgxpool.Pool
}

func NewProfileStateRepository(db *pgxpool.Pool) *ProfileStateRepository {
	return &ProfileStateRepository{db: db}
}

// Ensure ProfileStateRepository implements the repository facade
var _ repositories.ProfileStateRepositoryFacade = (*ProfileStateRepository)(nil)

func (r *ProfileStateRepository) LoadProfile(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.AppState, int64, error) {
	query := `
        SELECT doc, version
        FROM profile_states
        WHERE user_id = $1 AND profile = $2;
    `
	var doc []byte
	var version int64
	err := r.db.QueryRow(ctx, query, userID, string(kind)).Scan(&doc, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperrors.ErrNotFound
		}
		return nil, 0, fmt.Errorf("failed to load profile state: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, 0, fmt.Errorf("failed to decode profile state document: %w", err)
	}
	return &state, version, nil
}

func (r *ProfileStateRepository) LoadState(ctx context.Context, userID string) (*domain.DBState, map[domain.ProfileKind]int64, error) {
	query := `
        SELECT profile, doc, version
        FROM profile_states
        WHERE user_id = $1;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query profile states: %w", err)
	}
	defer rows.Close()

	state := &domain.DBState{}
	versions := map[domain.ProfileKind]int64{}
	for rows.Next() {
		var profile string
		var doc []byte
		var version int64
		if err := rows.Scan(&profile, &doc, &version); err != nil {
			return nil, nil, fmt.Errorf("failed to scan profile state row: %w", err)
		}
		kind, ok := domain.ValidProfile(profile)
		if !ok {
			continue
		}
		var tree domain.AppState
		if err := json.Unmarshal(doc, &tree); err != nil {
			return nil, nil, fmt.Errorf("failed to decode profile state document: %w", err)
		}
		*state.Profile(kind) = tree
		versions[kind] = version
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating profile state rows: %w", rows.Err())
	}
	if len(versions) == 0 {
		return nil, nil, apperrors.ErrNotFound
	}
	return state, versions, nil
}

func (r *ProfileStateRepository) SaveProfile(ctx context.Context, userID string, kind domain.ProfileKind, state domain.AppState, expectedVersion int64) (int64, error) {
	doc, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("failed to encode profile state document: %w", err)
	}

	if expectedVersion == 0 {
		query := `
            INSERT INTO profile_states (user_id, profile, doc, version, updated_at)
            VALUES ($1, $2, $3, 1, now())
            ON CONFLICT (user_id, profile) DO NOTHING;
        `
		cmdTag, err := r.db.Exec(ctx, query, userID, string(kind), doc)
		if err != nil {
			return 0, fmt.Errorf("failed to insert profile state: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			// Row already exists; the caller read a stale (absent) version.
			return 0, apperrors.ErrStaleWrite
		}
		return 1, nil
	}

	query := `
        UPDATE profile_states
        SET doc = $1, version = version + 1, updated_at = now()
        WHERE user_id = $2 AND profile = $3 AND version = $4
        RETURNING version;
    `
	var newVersion int64
	err = r.db.QueryRow(ctx, query, doc, userID, string(kind), expectedVersion).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrStaleWrite
		}
		return 0, fmt.Errorf("failed to update profile state: %w", err)
	}
	return newVersion, nil
}
