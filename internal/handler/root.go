package handler

import (
	"net/http"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "ChoiceCrafter Peers API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement général des pairs"},
				{"method": "GET", "path": "/leaderboard/top", "description": "Les 3 meilleurs utilisateurs"},
				{"method": "GET", "path": "/leaderboard/users/{email}", "description": "Rang d'un utilisateur"},
				{"method": "GET", "path": "/leaderboard/users/{email}/nearby", "description": "Utilisateurs proches dans le classement"},
			},
			"activity": []map[string]string{
				{"method": "GET", "path": "/activity", "description": "Fil d'activité récente des pairs"},
			},
			"personalization": []map[string]string{
				{"method": "GET", "path": "/personalization", "description": "Contexte de personnalisation du viewer"},
			},
			"viewer": []map[string]string{
				{"method": "GET", "path": "/viewer", "description": "Viewer courant de la session"},
				{"method": "PUT", "path": "/viewer", "description": "Changer le viewer courant"},
			},
			"preferences": []map[string]string{
				{"method": "GET", "path": "/preferences/{email}", "description": "Préférences de nudge d'un utilisateur"},
				{"method": "PUT", "path": "/preferences/{email}", "description": "Mettre à jour les préférences de nudge"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.Success(w, routes)
}
