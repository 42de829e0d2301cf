package handler

import "net/http"

// Router bundles the handlers and middleware the route table needs
type Router struct {
	Health      *HealthHandler
	Preferences *PreferenceProfileHandler
	Matches     *MatchHandler
	Metrics     http.Handler

	// Auth wraps every /api/ route
	Auth func(http.Handler) http.Handler
	// RateLimit wraps the match routes; runs after Auth
	RateLimit func(http.Handler) http.Handler
}

// Handler builds the route table (Go 1.22+ enhanced patterns)
func (rt *Router) Handler() http.Handler {
	api := http.NewServeMux()

	// "me" routes are more specific than {id} and win for /api/tenants/me/...
	api.HandleFunc("GET /api/tenants/me/preferences", rt.Preferences.GetMyPreferences)
	api.HandleFunc("POST /api/tenants/me/preferences", rt.Preferences.CreateMyPreferences)
	api.HandleFunc("PATCH /api/tenants/me/preferences", rt.Preferences.UpdateMyPreferences)
	api.HandleFunc("DELETE /api/tenants/me/preferences", rt.Preferences.DeleteMyPreferences)
	api.Handle("GET /api/tenants/me/matches", rt.RateLimit(http.HandlerFunc(rt.Matches.GetMyMatches)))

	// Operator routes
	api.HandleFunc("GET /api/tenants/{id}/preferences", rt.Preferences.GetTenantPreferences)
	api.HandleFunc("DELETE /api/tenants/{id}/preferences", rt.Preferences.DeleteTenantPreferences)
	api.Handle("GET /api/tenants/{id}/matches", rt.RateLimit(http.HandlerFunc(rt.Matches.GetTenantMatches)))

	root := http.NewServeMux()
	root.HandleFunc("GET /health", rt.Health.HealthCheck)
	if rt.Metrics != nil {
		root.Handle("GET /metrics", rt.Metrics)
	}
	root.Handle("/api/", rt.Auth(api))

	return root
}
