package engine

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/logger"
	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
)

// DefaultActivityFeedCap est le nombre maximal d'activités de pairs affichées
const DefaultActivityFeedCap = 20

// BuildActivityFeed reconstruit la liste des activités récentes des pairs
// à partir des documents bruts du feed d'inscriptions. Règles d'exclusion :
// l'inscription du viewer lui-même (email comparé sans casse), les documents
// indécodables ou sans userId, les snapshots sans statistiques de tâches,
// et les activités dont le propriétaire n'est pas dans l'annuaire (jamais
// d'identité par défaut). Le résultat est trié du plus récent au plus
// ancien puis tronqué à limit entrées.
func BuildActivityFeed(docs []json.RawMessage, dir *Directory, viewerEmail string, limit int, now time.Time) []model.ColleagueActivity {
	activities := make([]model.ColleagueActivity, 0, len(docs))

	for _, doc := range docs {
		var enrollment model.CourseEnrollment
		if err := json.Unmarshal(doc, &enrollment); err != nil {
			logger.Warning("Document d'inscription indécodable, ignoré: %v", err)
			continue
		}
		if enrollment.UserID == "" || strings.EqualFold(enrollment.UserID, viewerEmail) {
			continue
		}
		if enrollment.ProgressSummary == nil {
			continue
		}

		for i := range enrollment.ProgressSummary.ActivitySnapshots {
			snapshot := &enrollment.ProgressSummary.ActivitySnapshots[i]
			if len(snapshot.TaskStats) == 0 {
				continue
			}

			user, ok := dir.Lookup(enrollment.UserID)
			if !ok || user.AnonymousAvatar == nil {
				logger.Warning("Activité ignorée, utilisateur absent du cache: %s", enrollment.UserID)
				continue
			}

			timestamp := resolveActivityTimestamp(snapshot, now)
			activities = append(activities, model.NewColleagueActivity(
				user.Name,
				snapshot.ActivityID,
				user.AnonymousAvatar,
				timestamp,
			))
		}
	}

	sortActivitiesByNewest(activities)
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

// resolveActivityTimestamp calcule le timestamp ISO d'une activité : la plus
// récente des tentatives parsables, sinon l'heure du cycle courant. Une
// activité aux timestamps tous illisibles reste donc visible, classée en tête.
func resolveActivityTimestamp(snapshot *model.EnrollmentActivityProgress, now time.Time) string {
	var latest time.Time
	found := false
	for _, stats := range snapshot.TaskStats {
		if stats.AttemptDateTime == "" {
			continue
		}
		parsed, ok := ParseAttempt(stats.AttemptDateTime)
		if !ok {
			logger.Warning("Timestamp de tentative illisible: %s", stats.AttemptDateTime)
			continue
		}
		if !found || parsed.After(latest) {
			latest = parsed
			found = true
		}
	}

	if !found {
		latest = now
	}
	return FormatCanonical(latest)
}

// sortActivitiesByNewest trie les activités du plus récent au plus ancien
// sur le timestamp canonique. Le parseur strict sert de clé : une entrée
// rechargée avec un timestamp corrompu se classe à l'epoch, donc en queue.
func sortActivitiesByNewest(activities []model.ColleagueActivity) {
	if len(activities) == 0 {
		return
	}
	keys := make(map[string]time.Time, len(activities))
	for _, activity := range activities {
		if _, ok := keys[activity.Timestamp]; !ok {
			keys[activity.Timestamp] = ParseCanonical(activity.Timestamp)
		}
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return keys[activities[i].Timestamp].After(keys[activities[j].Timestamp])
	})
}
