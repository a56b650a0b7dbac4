package pgsql

import (
	portsrepo "github.com/FinHubBR/finhub_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgsql repositories into the provider struct
// consumed by the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StateRepo: NewProfileStateRepository(dbPool),
		UserRepo:  NewUserRepository(dbPool),
	}
}
