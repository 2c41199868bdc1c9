package model

// NudgePreferences contient les préférences de nudge d'un utilisateur.
// Un champ absent (nil) vaut "activé" : l'absence de préférence ne doit
// jamais masquer une fonctionnalité.
type NudgePreferences struct {
	UserEmail                           string `json:"userEmail"`
	PersonalStatisticsPromptEnabled     *bool  `json:"personalStatisticsPromptEnabled,omitempty"`
	CompletedActivityPromptEnabled      *bool  `json:"completedActivityPromptEnabled,omitempty"`
	ColleaguesPromptEnabled             *bool  `json:"colleaguesPromptEnabled,omitempty"`
	ActivityStartedNotificationsEnabled *bool  `json:"activityStartedNotificationsEnabled,omitempty"`
	ReminderNotificationsEnabled        *bool  `json:"reminderNotificationsEnabled,omitempty"`
	ColleaguesActivityPageEnabled       *bool  `json:"colleaguesActivityPageEnabled,omitempty"`
	DiscussionForumEnabled              *bool  `json:"discussionForumEnabled,omitempty"`
}

// DefaultNudgePreferences retourne les préférences par défaut (tout activé)
func DefaultNudgePreferences(userEmail string) NudgePreferences {
	enabled := true
	return NudgePreferences{
		UserEmail:                           userEmail,
		PersonalStatisticsPromptEnabled:     &enabled,
		CompletedActivityPromptEnabled:      &enabled,
		ColleaguesPromptEnabled:             &enabled,
		ActivityStartedNotificationsEnabled: &enabled,
		ReminderNotificationsEnabled:        &enabled,
		ColleaguesActivityPageEnabled:       &enabled,
		DiscussionForumEnabled:              &enabled,
	}
}

// IsColleaguesPromptEnabled indique si le prompt de motivation doit être affiché
func (p *NudgePreferences) IsColleaguesPromptEnabled() bool {
	return p == nil || p.ColleaguesPromptEnabled == nil || *p.ColleaguesPromptEnabled
}

// IsColleaguesActivityPageEnabled indique si la page d'activité des pairs est visible
func (p *NudgePreferences) IsColleaguesActivityPageEnabled() bool {
	return p == nil || p.ColleaguesActivityPageEnabled == nil || *p.ColleaguesActivityPageEnabled
}
