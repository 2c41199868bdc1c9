package handler

import (
	"net/http"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
)

type viewerPayload struct {
	Email string `json:"email"`
}

// SetViewer change l'utilisateur courant de la session ("" = déconnecté).
// Déclenche le recalcul du contexte de personnalisation côté moteur.
func SetViewer(w http.ResponseWriter, r *http.Request) {
	var payload viewerPayload
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid viewer payload", err)
		return
	}

	Engine.SetViewer(payload.Email)
	utils.Message(w, "viewer updated")
}

// GetViewer retourne l'utilisateur courant de la session
func GetViewer(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, viewerPayload{Email: Engine.ViewerEmail()})
}
