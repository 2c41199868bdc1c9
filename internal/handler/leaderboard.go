package handler

import (
	"net/http"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/engine"
	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
	"github.com/gorilla/mux"
)

// GetLeaderboard récupère le classement général des pairs
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 50)

	entries := Engine.Leaderboard()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	utils.Success(w, entries)
}

// GetTopPerformers récupère les 3 meilleurs utilisateurs
func GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	entries := Engine.Leaderboard()
	if len(entries) > 3 {
		entries = entries[:3]
	}

	topPerformers := make([]model.LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		// Badges spéciaux pour le podium
		switch entry.Rank {
		case 1:
			entry.Badges = []string{"👑", "🔥", "💎"}
		case 2:
			entry.Badges = []string{"🔥", "💪"}
		case 3:
			entry.Badges = []string{"💎", "⚡"}
		}
		topPerformers = append(topPerformers, entry)
	}

	utils.Success(w, topPerformers)
}

// GetUserRank récupère le rang d'un utilisateur dans le classement
func GetUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]

	entries := Engine.Leaderboard()
	rank, entry, ok := engine.FindRank(entries, email)
	if !ok {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found in leaderboard")
		return
	}

	userRank := model.UserRank{
		UserEmail:  entry.UserEmail,
		Rank:       rank,
		Score:      entry.Score,
		TotalUsers: len(entries),
	}

	// Calculer le percentile
	if userRank.TotalUsers > 0 {
		userRank.Percentile = float64(userRank.Rank) / float64(userRank.TotalUsers) * 100
	} else {
		userRank.Percentile = 100
	}

	utils.Success(w, userRank)
}

// GetNearbyUsers récupère les utilisateurs proches dans le classement
func GetNearbyUsers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]
	rangeVal := utils.QueryInt(r, "range", 5)

	entries := Engine.Leaderboard()
	rank, _, ok := engine.FindRank(entries, email)
	if !ok {
		utils.ErrorSimple(w, http.StatusNotFound, "user not found in leaderboard")
		return
	}

	low := rank - 1 - rangeVal
	if low < 0 {
		low = 0
	}
	high := rank + rangeVal
	if high > len(entries) {
		high = len(entries)
	}

	utils.Success(w, entries[low:high])
}
