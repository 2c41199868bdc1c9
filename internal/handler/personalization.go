package handler

import (
	"net/http"

	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
)

// PersonalizationResponse enveloppe le contexte de personnalisation avec
// l'état de la préférence d'affichage du prompt
type PersonalizationResponse struct {
	Shown   bool                          `json:"shown"`
	Context *model.PersonalizationContext `json:"context,omitempty"`
}

// GetPersonalization récupère les faits de personnalisation du viewer
// courant (rang, score, écarts avec les voisins). La préférence de nudge
// "colleaguesPromptEnabled" sert de portail : désactivée, le contexte n'est
// même pas demandé au moteur. Une préférence absente vaut "affiché".
func GetPersonalization(w http.ResponseWriter, r *http.Request) {
	viewer := Engine.ViewerEmail()

	prefs, err := loadNudgePreferences(r.Context(), viewer)
	if err != nil {
		// Préférences illisibles : on retombe sur le défaut "affiché"
		utils.LogError("could not fetch nudge preferences: %v", err)
		prefs = nil
	}
	if !prefs.IsColleaguesPromptEnabled() {
		utils.Success(w, PersonalizationResponse{Shown: false})
		return
	}

	context := Engine.Personalization()
	utils.Success(w, PersonalizationResponse{Shown: true, Context: &context})
}
