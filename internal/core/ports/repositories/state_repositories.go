package repositories

import (
	"context"

	"github.com/FinHubBR/finhub_backend/internal/core/domain"
)

// ProfileStateReader defines read operations for persisted profile trees.
type ProfileStateReader interface {
	// LoadProfile retrieves one profile tree and its version.
	// Returns apperrors.ErrNotFound when the user has no persisted tree yet.
	LoadProfile(ctx context.Context, userID string, kind domain.ProfileKind) (*domain.AppState, int64, error)

	// LoadState retrieves both profile trees with their versions.
	// Returns apperrors.ErrNotFound when neither profile exists.
	LoadState(ctx context.Context, userID string) (*domain.DBState, map[domain.ProfileKind]int64, error)
}

// ProfileStateWriter defines write operations for persisted profile trees.
type ProfileStateWriter interface {
	// SaveProfile replaces a profile tree wholesale. expectedVersion is the
	// version the caller read; 0 means the row must not exist yet. A mismatch
	// returns apperrors.ErrStaleWrite and leaves the row untouched.
	SaveProfile(ctx context.Context, userID string, kind domain.ProfileKind, state domain.AppState, expectedVersion int64) (int64, error)
}

// ProfileStateRepositoryFacade combines all profile-state repository interfaces.
type ProfileStateRepositoryFacade interface {
	ProfileStateReader
	ProfileStateWriter
}
