package scanner

import (
	"database/sql"

	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/utils"
)

// ScanNudgePreferences scanne une ligne SQL vers un NudgePreferences
// Utilise les types sql.Null* et les convertit automatiquement
func ScanNudgePreferences(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.NudgePreferences, error) {
	var prefs model.NudgePreferences
	var personalStats, completedActivity, colleaguesPrompt sql.NullBool
	var activityStarted, reminders, colleaguesPage, discussionForum sql.NullBool

	err := scanner.Scan(
		&prefs.UserEmail,
		&personalStats, &completedActivity, &colleaguesPrompt,
		&activityStarted, &reminders, &colleaguesPage, &discussionForum,
	)
	if err != nil {
		return nil, err
	}

	// Conversions : NULL reste nil, donc "activé" par défaut
	prefs.PersonalStatisticsPromptEnabled = utils.NullBoolToPointer(personalStats)
	prefs.CompletedActivityPromptEnabled = utils.NullBoolToPointer(completedActivity)
	prefs.ColleaguesPromptEnabled = utils.NullBoolToPointer(colleaguesPrompt)
	prefs.ActivityStartedNotificationsEnabled = utils.NullBoolToPointer(activityStarted)
	prefs.ReminderNotificationsEnabled = utils.NullBoolToPointer(reminders)
	prefs.ColleaguesActivityPageEnabled = utils.NullBoolToPointer(colleaguesPage)
	prefs.DiscussionForumEnabled = utils.NullBoolToPointer(discussionForum)

	return &prefs, nil
}
