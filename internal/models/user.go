package model

import (
	"time"
)

// User représente un document étudiant du feed "users".
// Le score total n'est jamais stocké tel quel : il est recalculé
// à chaque réception du feed à partir de la map des scores journaliers.
type User struct {
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	AnonymousAvatar    *Avatar          `json:"anonymousAvatar,omitempty"`
	Online             bool             `json:"online,omitempty"`
	TotalScore         int              `json:"totalScore"`
	Streak             int              `json:"streak"`
	LearningPathPoints int              `json:"learningPathPoints,omitempty"`
	Badges             []string         `json:"badges,omitempty"`
	Scores             map[string]int64 `json:"scores,omitempty"` // clé = yyyy-MM-dd, valeur = score du jour
}

const dayLayout = "2006-01-02"

// ComputeTotalScore recalcule et mémorise le score total (somme des scores journaliers)
func (u *User) ComputeTotalScore() int {
	total := 0
	for _, score := range u.Scores {
		total += int(score)
	}
	if total < 0 {
		total = 0
	}
	u.TotalScore = total
	return total
}

// ComputeStreak recalcule la série de jours consécutifs avec activité,
// ancrée sur aujourd'hui ou hier
func (u *User) ComputeStreak() int {
	return u.ComputeStreakAt(time.Now())
}

// ComputeStreakAt calcule la série à une date de référence donnée
func (u *User) ComputeStreakAt(now time.Time) int {
	if len(u.Scores) == 0 {
		u.Streak = 0
		return 0
	}

	days := make(map[string]bool, len(u.Scores))
	for day := range u.Scores {
		days[day] = true
	}

	today := now.Format(dayLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dayLayout)

	var anchor time.Time
	switch {
	case days[today]:
		anchor, _ = time.Parse(dayLayout, today)
	case days[yesterday]:
		anchor, _ = time.Parse(dayLayout, yesterday)
	default:
		// Ni aujourd'hui ni hier : pas de série en cours
		u.Streak = 0
		return 0
	}

	streak := 1
	for {
		previous := anchor.AddDate(0, 0, -streak)
		if !days[previous.Format(dayLayout)] {
			break
		}
		streak++
	}

	u.Streak = streak
	return streak
}

// AddBadge ajoute un badge à l'utilisateur
func (u *User) AddBadge(badge string) {
	if badge == "" {
		return
	}
	u.Badges = append(u.Badges, badge)
}
