package model

import "github.com/google/uuid"

// ColleagueActivity représente une activité récente d'un pair, dérivée
// des feeds et reconstruite intégralement à chaque cycle (jamais modifiée en place)
type ColleagueActivity struct {
	ID                  string  `json:"id"`
	ColleagueName       string  `json:"colleagueName"`
	ActivityName        string  `json:"activityName"`
	ActivityDescription string  `json:"activityDescription"`
	AnonymousAvatar     *Avatar `json:"anonymousAvatar,omitempty"`
	Timestamp           string  `json:"timestamp"` // format canonique yyyy-MM-ddTHH:mm:ss.SSS
}

// NewColleagueActivity construit une activité de pair avec sa description d'affichage
func NewColleagueActivity(colleagueName, activityName string, avatar *Avatar, timestamp string) ColleagueActivity {
	return ColleagueActivity{
		ID:                  uuid.NewString(),
		ColleagueName:       colleagueName,
		ActivityName:        activityName,
		ActivityDescription: "Completed: " + activityName,
		AnonymousAvatar:     avatar,
		Timestamp:           timestamp,
	}
}
