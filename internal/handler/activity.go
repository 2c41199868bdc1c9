package handler

import (
	"net/http"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
)

// GetColleagueActivity récupère le fil d'activité récente des pairs
// (le viewer courant en est déjà exclu, trié du plus récent au plus ancien)
func GetColleagueActivity(w http.ResponseWriter, r *http.Request) {
	limit := utils.QueryInt(r, "limit", 0)

	activities := Engine.Activities()
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}

	utils.Success(w, activities)
}
