package portal

// ViewState says which variant of the portal a visitor gets. Exactly one
// applies at a time.
type ViewState int

const (
	ViewAnonymous ViewState = iota
	ViewCustomer
	ViewAdmin
)

func (v ViewState) String() string {
	switch v {
	case ViewCustomer:
		return "customer"
	case ViewAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// ResolveView maps the resolved user to a view. Any role other than
// admin, including an unknown one, gets the customer view.
func ResolveView(user *User) ViewState {
	if user == nil {
		return ViewAnonymous
	}
	if user.Role == RoleAdmin {
		return ViewAdmin
	}
	return ViewCustomer
}

// protectedRoutes need a session; anonymous visitors are sent to login.
var protectedRoutes = map[string]bool{
	"/dashboard": true,
	"/projects":  true,
	"/billing":   true,
	"/account":   true,
	"/admin":     true,
}

const loginRoute = "/login"

// RouteFor decides where a visitor lands for a requested route. A
// protected route without a session redirects to login; everything else
// passes through unchanged.
func RouteFor(route string, view ViewState) string {
	if view == ViewAnonymous && protectedRoutes[route] {
		return loginRoute
	}
	return route
}
