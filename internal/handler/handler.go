package handler

import (
	"net/http"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/engine"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
)

// Engine est le moteur de réconciliation partagé par tous les handlers,
// injecté au démarrage du serveur
var Engine *engine.Engine

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
