package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and is
// used by the command layer and any host integration.
type ServiceContainer struct {
	AllocationJournal AllocationJournalSvcFacade
	AllocationGuard   AllocationGuardSvc
	Cycle             CycleSvcFacade
	CycleClose        CycleCloseSvcFacade
	Goal              GoalSvcFacade
	SavingsPool       SavingsPoolSvcFacade
	SavingsPlanning   SavingsPlanningSvcFacade
	AssistantRouter   AssistantRouterSvcFacade
	AssistantWrite    AssistantWriteSvcFacade
	MerchantMapping   MerchantMappingSvcFacade
	AlertCheck        AlertCheckSvcFacade
}
