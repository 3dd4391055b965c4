package services

import (
	portsrepo "github.com/SscSPs/clinic_cash_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Entry: NewEntryService(
			repos.EntryRepo,
			WithStrictPercentages(cfg.StrictPercentages),
		),
		Deduction:    NewDeductionService(repos.DeductionRepo),
		Professional: NewProfessionalService(repos.ProfessionalRepo),
		Liquidation:  NewLiquidationService(repos.EntryRepo, repos.DeductionRepo, repos.ProfessionalRepo),
	}
}
