package portal

import "testing"

func TestResolveView(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected ViewState
	}{
		{"nil user", nil, ViewAnonymous},
		{"customer", &User{ID: "u1", Role: RoleCustomer}, ViewCustomer},
		{"admin", &User{ID: "u2", Role: RoleAdmin}, ViewAdmin},
		{"unknown role falls back to customer", &User{ID: "u3", Role: "support"}, ViewCustomer},
	}

	for _, test := range tests {
		result := ResolveView(test.user)
		if result != test.expected {
			t.Errorf("%s: ResolveView = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestRouteFor(t *testing.T) {
	tests := []struct {
		route    string
		view     ViewState
		expected string
	}{
		{"/dashboard", ViewAnonymous, "/login"},
		{"/projects", ViewAnonymous, "/login"},
		{"/admin", ViewAnonymous, "/login"},
		{"/dashboard", ViewCustomer, "/dashboard"},
		{"/admin", ViewAdmin, "/admin"},
		{"/", ViewAnonymous, "/"},
		{"/services", ViewAnonymous, "/services"},
	}

	for _, test := range tests {
		result := RouteFor(test.route, test.view)
		if result != test.expected {
			t.Errorf("RouteFor(%q, %s) = %q, expected %q", test.route, test.view, result, test.expected)
		}
	}
}
