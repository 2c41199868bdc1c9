package engine

import (
	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
)

// BuildPersonalizationContext calcule les faits de personnalisation du
// viewer à partir du classement ordonné : rang, score total et écarts de
// score avec les voisins immédiats. Chaque champ est renseigné
// indépendamment ; un viewer absent du classement ne reçoit que le nombre
// de pairs.
func BuildPersonalizationContext(entries []model.LeaderboardEntry, viewerEmail string) model.PersonalizationContext {
	context := model.PersonalizationContext{PeerCount: len(entries)}

	rank, entry, ok := FindRank(entries, viewerEmail)
	if !ok {
		return context
	}

	score := entry.Score
	context.Rank = &rank
	context.TotalScore = &score

	if rank > 1 {
		ahead := entries[rank-2].Score - score
		context.DeltaAhead = &ahead
	}
	if rank < len(entries) {
		behind := score - entries[rank].Score
		context.DeltaBehind = &behind
	}

	return context
}
