package engine

import (
	"sort"
	"strings"

	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
)

// Rank produit le classement ordonné de l'annuaire : tri par score
// décroissant, les égalités conservent l'ordre d'arrivée du feed (tri
// stable, surtout pas de sous-tri par email). Les rangs commencent à 1.
func Rank(dir *Directory) []model.LeaderboardEntry {
	users := dir.Users()
	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, model.LeaderboardEntry{
			UserEmail: user.Email,
			UserName:  user.Name,
			Avatar:    user.AnonymousAvatar,
			Score:     user.TotalScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// FindRank retrouve le rang (1-based) et l'entrée d'un utilisateur dans
// un classement ordonné. Les emails sont comparés sans tenir compte de
// la casse, comme partout dans le moteur.
func FindRank(entries []model.LeaderboardEntry, email string) (int, *model.LeaderboardEntry, bool) {
	if email == "" {
		return 0, nil, false
	}
	for i := range entries {
		if strings.EqualFold(entries[i].UserEmail, email) {
			return i + 1, &entries[i], true
		}
	}
	return 0, nil, false
}
