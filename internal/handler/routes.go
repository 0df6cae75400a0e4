package handler

import "net/http"

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Preferences *PreferencesHandler
	Banner      *BannerHandler
	Progress    *ProgressHandler
	Session     *SessionHandler
}

// RegisterRoutes mounts every route on mux (Go 1.22+ method patterns)
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	// Health check
	mux.HandleFunc("GET /health", HealthCheck)

	// Preference routes
	mux.HandleFunc("GET /api/preferences/accessibility", h.Preferences.GetAccessibility)
	mux.HandleFunc("PATCH /api/preferences/accessibility", h.Preferences.UpdateAccessibility)
	mux.HandleFunc("GET /api/preferences/notifications", h.Preferences.GetNotifications)
	mux.HandleFunc("PATCH /api/preferences/notifications", h.Preferences.UpdateNotifications)
	mux.HandleFunc("GET /api/preferences/study-plan", h.Preferences.GetStudyPlan)
	mux.HandleFunc("PATCH /api/preferences/study-plan", h.Preferences.UpdateStudyPlan)
	mux.HandleFunc("POST /api/preferences/study-plan/reset", h.Preferences.ResetStudyPlan)

	// Banner routes
	mux.HandleFunc("GET /api/banners/premium", h.Banner.GetPremium)
	mux.HandleFunc("POST /api/banners/premium/dismiss", h.Banner.DismissPremium)
	mux.HandleFunc("DELETE /api/banners/premium", h.Banner.ClearPremium)

	// Progress routes
	mux.HandleFunc("GET /api/progress/weekly-goal", h.Progress.GetWeeklyGoal)

	// Session routes
	mux.HandleFunc("POST /api/auth/sign-out", h.Session.SignOut)
}
