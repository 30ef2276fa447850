package services

import (
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, classifier portssvc.IntentClassifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.AllocationJournal = NewAllocationJournalService(repos.AllocationEventRepo)
	container.AllocationGuard = NewAllocationGuardService()
	container.Cycle = NewCycleService()
	container.CycleClose = NewCycleCloseService()
	container.Goal = NewGoalService()
	container.SavingsPool = NewSavingsPoolService()
	container.SavingsPlanning = NewSavingsPlanningService()
	container.AssistantRouter = NewAssistantRouterService(cfg, classifier)
	container.AssistantWrite = NewAssistantWriteService()
	container.MerchantMapping = NewMerchantMappingService(cfg, repos.MerchantMappingRepo)
	container.AlertCheck = NewAlertCheckService(repos.AlertRepo)

	return container
}
