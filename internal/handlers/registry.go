package handlers

// AppHandlers bundles every HTTP handler the router wires up.
type AppHandlers struct {
	AccountHandler     *AccountHandler
	InternshipHandler  *InternshipHandler
	ApplicationHandler *ApplicationHandler
	ProfileHandler     *ProfileHandler
}
