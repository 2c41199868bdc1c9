package engine

import (
	"encoding/json"
	"strings"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/logger"
	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
)

// ScoreFunc calcule le score total d'un utilisateur fraîchement décodé.
// La fonction est fournie par un collaborateur externe : l'annuaire se
// contente d'un entier non négatif.
type ScoreFunc func(*model.User) int

// DefaultScore est la fonction de score par défaut : somme des scores
// journaliers, avec recalcul de la série de jours actifs au passage
func DefaultScore(user *model.User) int {
	user.ComputeStreak()
	return user.ComputeTotalScore()
}

// Directory est l'annuaire reconcilié email -> utilisateur, reconstruit
// intégralement à chaque snapshot du feed "users". L'ordre d'arrivée du
// feed est conservé pour servir de tiebreak stable au classement.
type Directory struct {
	byEmail map[string]*model.User
	ordered []*model.User
}

// RebuildDirectory construit un nouvel annuaire à partir des documents
// bruts du feed. Un document indécodable ou sans email est ignoré sans
// interrompre le lot ; en cas d'email dupliqué la dernière écriture gagne
// mais la position d'arrivée initiale est conservée.
func RebuildDirectory(docs []json.RawMessage, score ScoreFunc) *Directory {
	if score == nil {
		score = DefaultScore
	}

	dir := &Directory{
		byEmail: make(map[string]*model.User, len(docs)),
		ordered: make([]*model.User, 0, len(docs)),
	}

	positions := make(map[string]int, len(docs))
	for _, doc := range docs {
		var user model.User
		if err := json.Unmarshal(doc, &user); err != nil {
			logger.Warning("Document utilisateur indécodable, ignoré: %v", err)
			continue
		}
		if user.Email == "" {
			logger.Warning("Document utilisateur sans email, ignoré")
			continue
		}

		user.TotalScore = score(&user)
		if user.TotalScore < 0 {
			user.TotalScore = 0
		}

		key := strings.ToLower(user.Email)
		if pos, seen := positions[key]; seen {
			dir.ordered[pos] = &user
		} else {
			positions[key] = len(dir.ordered)
			dir.ordered = append(dir.ordered, &user)
		}
		dir.byEmail[key] = &user
	}

	return dir
}

// Lookup retourne l'utilisateur associé à un email (comparaison insensible
// à la casse). Un email absent signifie "utilisateur inconnu" : l'appelant
// doit ignorer l'entrée, jamais fabriquer une identité par défaut.
func (d *Directory) Lookup(email string) (*model.User, bool) {
	if d == nil || email == "" {
		return nil, false
	}
	user, ok := d.byEmail[strings.ToLower(email)]
	return user, ok
}

// Users retourne les utilisateurs dans l'ordre d'arrivée du feed
func (d *Directory) Users() []*model.User {
	if d == nil {
		return nil
	}
	return d.ordered
}

// Len retourne le nombre d'utilisateurs de l'annuaire
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ordered)
}
