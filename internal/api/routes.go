package api

import (
	"net/http"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/handler"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/middleware"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Leaderboard
	r.HandleFunc("/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/top", handler.GetTopPerformers).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{email}", handler.GetUserRank).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/users/{email}/nearby", handler.GetNearbyUsers).Methods(http.MethodGet)

	// Activité des pairs
	r.HandleFunc("/activity", handler.GetColleagueActivity).Methods(http.MethodGet)

	// Personnalisation
	r.HandleFunc("/personalization", handler.GetPersonalization).Methods(http.MethodGet)

	// Viewer de la session
	r.HandleFunc("/viewer", handler.GetViewer).Methods(http.MethodGet)
	r.HandleFunc("/viewer", handler.SetViewer).Methods(http.MethodPut)

	// Préférences de nudge
	r.HandleFunc("/preferences/{email}", handler.GetNudgePreferences).Methods(http.MethodGet)
	r.HandleFunc("/preferences/{email}", handler.UpsertNudgePreferences).Methods(http.MethodPut)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
