package models

import "fmt"

// Route identifies one page of the consultation platform. Navigation stores
// the current route on the session rather than recomputing it per render.
type Route string

const (
	RouteHome           Route = "home"
	RouteIntake         Route = "intake"
	RouteMedicalHistory Route = "medical-history"
	RouteConsultation   Route = "consultation"
	RouteChat           Route = "chat"
	RouteSpecialties    Route = "specialties"
	RouteApproach       Route = "approach"
	RouteResources      Route = "resources"
	RouteSettings       Route = "settings"
)

// Routes lists every page in sidebar order.
var Routes = []Route{
	RouteHome,
	RouteIntake,
	RouteMedicalHistory,
	RouteConsultation,
	RouteChat,
	RouteSpecialties,
	RouteApproach,
	RouteResources,
	RouteSettings,
}

// ParseRoute validates a route name from a navigation request.
func ParseRoute(name string) (Route, error) {
	for _, r := range Routes {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown page: %s", name)
}
