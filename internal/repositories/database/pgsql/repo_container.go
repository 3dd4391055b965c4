package pgsql

import (
	portsrepo "github.com/SscSPs/clinic_cash_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:        newPgxEntryRepository(dbPool),
		DeductionRepo:    newPgxDeductionRepository(dbPool),
		ProfessionalRepo: newPgxProfessionalRepository(dbPool),
	}
}
