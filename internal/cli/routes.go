package cli

// Destinations mirrored from the web front-end. The gate treats paths absent
// from protectedRoutes as public; an empty role list means any signed-in user.
const (
	loginRoute     = "/login"
	homeRoute      = "/dashboard"
	inventoryRoute = "/dashboard/inventory"
	reportsRoute   = "/dashboard/reports"
	refdataRoute   = "/dashboard/reference-data"
	adminRoute     = "/dashboard/admin"
)

var protectedRoutes = map[string][]string{
	homeRoute:      {},
	inventoryRoute: {"user"},
	reportsRoute:   {"user", "admin"},
	refdataRoute:   {"admin"},
	adminRoute:     {"admin"},
}
