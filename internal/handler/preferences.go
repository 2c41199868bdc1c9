package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/database"
	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/scanner"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

// GetNudgePreferences récupère les préférences de nudge d'un utilisateur.
// L'absence d'enregistrement retourne les valeurs par défaut (tout activé).
func GetNudgePreferences(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]

	prefs, err := loadNudgePreferences(r.Context(), email)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch nudge preferences", err)
		return
	}

	utils.Success(w, prefs)
}

// UpsertNudgePreferences crée ou met à jour les préférences de nudge
func UpsertNudgePreferences(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	email := vars["email"]

	var prefs model.NudgePreferences
	if err := utils.DecodeJSON(r, &prefs); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid preferences payload", err)
		return
	}
	prefs.UserEmail = email

	_, err := database.DB.Exec(r.Context(), `
		INSERT INTO nudge_preferences (
			user_email,
			personal_statistics_prompt_enabled,
			completed_activity_prompt_enabled,
			colleagues_prompt_enabled,
			activity_started_notifications_enabled,
			reminder_notifications_enabled,
			colleagues_activity_page_enabled,
			discussion_forum_enabled
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_email) DO UPDATE SET
			personal_statistics_prompt_enabled = EXCLUDED.personal_statistics_prompt_enabled,
			completed_activity_prompt_enabled = EXCLUDED.completed_activity_prompt_enabled,
			colleagues_prompt_enabled = EXCLUDED.colleagues_prompt_enabled,
			activity_started_notifications_enabled = EXCLUDED.activity_started_notifications_enabled,
			reminder_notifications_enabled = EXCLUDED.reminder_notifications_enabled,
			colleagues_activity_page_enabled = EXCLUDED.colleagues_activity_page_enabled,
			discussion_forum_enabled = EXCLUDED.discussion_forum_enabled
	`,
		email,
		utils.PointerToNullBool(prefs.PersonalStatisticsPromptEnabled),
		utils.PointerToNullBool(prefs.CompletedActivityPromptEnabled),
		utils.PointerToNullBool(prefs.ColleaguesPromptEnabled),
		utils.PointerToNullBool(prefs.ActivityStartedNotificationsEnabled),
		utils.PointerToNullBool(prefs.ReminderNotificationsEnabled),
		utils.PointerToNullBool(prefs.ColleaguesActivityPageEnabled),
		utils.PointerToNullBool(prefs.DiscussionForumEnabled),
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save nudge preferences", err)
		return
	}

	utils.Success(w, prefs)
}

// loadNudgePreferences charge les préférences d'un utilisateur depuis la base
func loadNudgePreferences(ctx context.Context, email string) (*model.NudgePreferences, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT
			user_email,
			personal_statistics_prompt_enabled,
			completed_activity_prompt_enabled,
			colleagues_prompt_enabled,
			activity_started_notifications_enabled,
			reminder_notifications_enabled,
			colleagues_activity_page_enabled,
			discussion_forum_enabled
		FROM nudge_preferences
		WHERE LOWER(user_email) = LOWER($1)
	`, email)

	prefs, err := scanner.ScanNudgePreferences(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := model.DefaultNudgePreferences(email)
			return &defaults, nil
		}
		return nil, err
	}

	return prefs, nil
}
