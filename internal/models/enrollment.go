package model

// CourseEnrollment représente un document du feed "COURSE_ENROLLMENTS".
// Le résumé de progression est un payload dynamique côté stockage : on le
// décode dans une forme typée en un seul passage, un document mal formé est
// simplement ignoré par l'appelant.
type CourseEnrollment struct {
	UserID          string           `json:"userId"`
	CourseID        string           `json:"courseId,omitempty"`
	ProgressSummary *ProgressSummary `json:"progressSummary,omitempty"`
}

// ProgressSummary regroupe les instantanés d'activité d'une inscription
type ProgressSummary struct {
	ActivitySnapshots []EnrollmentActivityProgress `json:"activitySnapshots,omitempty"`
}

// EnrollmentActivityProgress représente la progression d'une activité
// au sein d'une inscription de cours
type EnrollmentActivityProgress struct {
	CourseID     string               `json:"courseId,omitempty"`
	ActivityID   string               `json:"activityId"`
	UserID       string               `json:"userId,omitempty"`
	TaskStats    map[string]TaskStats `json:"taskStats,omitempty"`
	HighestScore *int                 `json:"highestScore,omitempty"`
}

// TaskStats contient les statistiques d'une tâche au sein d'une activité.
// Tous les champs sont optionnels dans les documents réels.
type TaskStats struct {
	AttemptDateTime string   `json:"attemptDateTime,omitempty"`
	TimeSpent       string   `json:"timeSpent,omitempty"`
	Retries         *int     `json:"retries,omitempty"`
	Success         *bool    `json:"success,omitempty"`
	HintsUsed       *bool    `json:"hintsUsed,omitempty"`
	CompletionRatio *float64 `json:"completionRatio,omitempty"`
	ScoreRatio      *float64 `json:"scoreRatio,omitempty"`
}

// ResolveCompletionRatio retourne le ratio de complétion borné à [0, 1]
func (t *TaskStats) ResolveCompletionRatio() float64 {
	if t.CompletionRatio != nil {
		return clampRatio(*t.CompletionRatio)
	}
	if t.Success != nil && *t.Success {
		return 1.0
	}
	return 0.0
}

// ResolveScoreRatio retourne le ratio de score borné à [0, 1],
// avec repli sur le ratio de complétion
func (t *TaskStats) ResolveScoreRatio() float64 {
	if t.ScoreRatio != nil {
		return clampRatio(*t.ScoreRatio)
	}
	return t.ResolveCompletionRatio()
}

// IsCompleted indique si la tâche est considérée comme terminée
func (t *TaskStats) IsCompleted() bool {
	if t.Success != nil && *t.Success {
		return true
	}

	completion := t.ResolveCompletionRatio()
	if completion >= 1.0 {
		return true
	}

	if completion > 0.0 {
		if t.ScoreRatio == nil {
			return true
		}
		if *t.ScoreRatio > 0.0 {
			return true
		}
	}

	if t.ScoreRatio != nil {
		return *t.ScoreRatio > 0.0
	}

	return false
}

// IsFullyCorrect indique si la tâche a obtenu le score maximal
func (t *TaskStats) IsFullyCorrect() bool {
	return t.ResolveScoreRatio() >= 1.0
}

func clampRatio(value float64) float64 {
	if value < 0.0 {
		return 0.0
	}
	if value > 1.0 {
		return 1.0
	}
	return value
}
