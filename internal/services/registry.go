package services

// ServiceContainer bundles the services for handler wiring.
type ServiceContainer struct {
	AccountService     AccountService
	InternshipService  InternshipService
	ApplicationService ApplicationService
	ProfileService     ProfileService
}
