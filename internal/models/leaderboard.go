package model

// LeaderboardEntry représente un utilisateur classé dans le leaderboard.
// Les rangs commencent à 1, les égalités conservent l'ordre d'arrivée du feed.
type LeaderboardEntry struct {
	UserEmail string   `json:"userEmail"`
	UserName  string   `json:"userName"`
	Avatar    *Avatar  `json:"avatar,omitempty"`
	Rank      int      `json:"rank"`
	Score     int      `json:"score"`
	Badges    []string `json:"badges,omitempty"`
}

// UserRank représente la position d'un utilisateur dans le classement
type UserRank struct {
	UserEmail  string  `json:"userEmail"`
	Rank       int     `json:"rank"`
	Score      int     `json:"score"`
	TotalUsers int     `json:"totalUsers"`
	Percentile float64 `json:"percentile"` // Top X%
}

// PersonalizationContext contient les faits structurés remis au sélecteur
// de messages de motivation. Tous les champs de rang/score sont optionnels
// et indépendants : absents si le viewer n'est pas dans le classement.
type PersonalizationContext struct {
	PeerCount   int  `json:"peerCount"`
	Rank        *int `json:"rank,omitempty"`
	TotalScore  *int `json:"totalScore,omitempty"`
	DeltaAhead  *int `json:"deltaAhead,omitempty"`  // positif = l'utilisateur devant a plus de points
	DeltaBehind *int `json:"deltaBehind,omitempty"` // positif = avance sur l'utilisateur derrière
}
