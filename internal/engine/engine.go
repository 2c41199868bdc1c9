package engine

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/logger"
	model "github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/models"
)

// Update est une livraison d'un feed : soit un snapshot complet de la
// collection, soit une erreur de transport. Sur erreur le moteur conserve
// l'état dérivé précédent au lieu de vider le classement.
type Update struct {
	Docs []json.RawMessage
	Err  error
}

// Snapshot est l'état dérivé complet du moteur, publié d'un bloc à chaque
// recalcul et jamais modifié en place
type Snapshot struct {
	Directory       *Directory
	Leaderboard     []model.LeaderboardEntry
	Activities      []model.ColleagueActivity
	Personalization model.PersonalizationContext
	ViewerEmail     string
}

// Engine réconcilie les deux feeds asynchrones (users et inscriptions) en
// une vue dérivée cohérente. Chaque feed alimente un canal à écrasement
// (seul le dernier snapshot compte), consommé par une unique goroutine de
// réconciliation : aucune lecture déchirée possible entre les deux feeds.
type Engine struct {
	score   ScoreFunc
	feedCap int
	now     func() time.Time

	usersCh  chan Update
	enrollCh chan Update
	viewerCh chan string
	done     chan struct{}
	stopOnce sync.Once

	state atomic.Pointer[Snapshot]
}

// NewEngine crée et démarre un moteur de réconciliation. Un score nil
// utilise DefaultScore, un cap <= 0 utilise DefaultActivityFeedCap.
func NewEngine(score ScoreFunc, feedCap int) *Engine {
	if score == nil {
		score = DefaultScore
	}
	if feedCap <= 0 {
		feedCap = DefaultActivityFeedCap
	}

	e := &Engine{
		score:    score,
		feedCap:  feedCap,
		now:      time.Now,
		usersCh:  make(chan Update, 1),
		enrollCh: make(chan Update, 1),
		viewerCh: make(chan string, 1),
		done:     make(chan struct{}),
	}
	e.state.Store(&Snapshot{
		Directory:   RebuildDirectory(nil, score),
		Leaderboard: []model.LeaderboardEntry{},
		Activities:  []model.ColleagueActivity{},
	})

	go e.run()
	return e
}

// Close arrête la goroutine de réconciliation. L'état dérivé restant est
// abandonné avec la session ; rien n'est persisté.
func (e *Engine) Close() {
	e.stopOnce.Do(func() { close(e.done) })
}

// PushUsers livre un snapshot (ou une erreur) du feed "users"
func (e *Engine) PushUsers(update Update) {
	offerLatest(e.usersCh, update)
}

// PushEnrollments livre un snapshot (ou une erreur) du feed d'inscriptions
func (e *Engine) PushEnrollments(update Update) {
	offerLatest(e.enrollCh, update)
}

// SetViewer change l'utilisateur courant ("" = déconnecté) et déclenche
// le recalcul du contexte de personnalisation
func (e *Engine) SetViewer(email string) {
	offerLatest(e.viewerCh, email)
}

// Snapshot retourne l'état dérivé courant (immuable)
func (e *Engine) Snapshot() *Snapshot {
	return e.state.Load()
}

// Leaderboard retourne le classement courant
func (e *Engine) Leaderboard() []model.LeaderboardEntry {
	return e.state.Load().Leaderboard
}

// Activities retourne le fil d'activité courant des pairs
func (e *Engine) Activities() []model.ColleagueActivity {
	return e.state.Load().Activities
}

// Personalization retourne le contexte de personnalisation courant
func (e *Engine) Personalization() model.PersonalizationContext {
	return e.state.Load().Personalization
}

// ViewerEmail retourne l'email du viewer courant
func (e *Engine) ViewerEmail() string {
	return e.state.Load().ViewerEmail
}

// offerLatest envoie une valeur sur un canal à capacité 1 en écrasant
// l'éventuelle valeur en attente : un snapshot périmé jamais consommé est
// simplement remplacé par le plus récent
func offerLatest[T any](ch chan T, value T) {
	for {
		select {
		case ch <- value:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (e *Engine) run() {
	for {
		select {
		case <-e.done:
			return
		case update := <-e.usersCh:
			e.applyUsers(update)
		case update := <-e.enrollCh:
			e.applyEnrollments(update)
		case email := <-e.viewerCh:
			e.applyViewer(email)
		}
	}
}

// applyUsers reconstruit l'annuaire, le classement et le contexte de
// personnalisation. Le fil d'activité n'est volontairement pas reconstruit
// ici : il ne dépend de l'annuaire que pour l'affichage et sera rafraîchi
// au prochain snapshot d'inscriptions (fenêtre d'incohérence bornée).
func (e *Engine) applyUsers(update Update) {
	if update.Err != nil {
		logger.Warning("Feed users en erreur, état conservé: %v", update.Err)
		return
	}

	directory := RebuildDirectory(update.Docs, e.score)
	leaderboard := Rank(directory)

	previous := e.state.Load()
	e.state.Store(&Snapshot{
		Directory:       directory,
		Leaderboard:     leaderboard,
		Activities:      previous.Activities,
		Personalization: BuildPersonalizationContext(leaderboard, previous.ViewerEmail),
		ViewerEmail:     previous.ViewerEmail,
	})
}

// applyEnrollments reconstruit le fil d'activité contre le dernier annuaire
// complètement publié
func (e *Engine) applyEnrollments(update Update) {
	if update.Err != nil {
		logger.Warning("Feed inscriptions en erreur, état conservé: %v", update.Err)
		return
	}

	previous := e.state.Load()
	activities := BuildActivityFeed(update.Docs, previous.Directory, previous.ViewerEmail, e.feedCap, e.now())

	e.state.Store(&Snapshot{
		Directory:       previous.Directory,
		Leaderboard:     previous.Leaderboard,
		Activities:      activities,
		Personalization: previous.Personalization,
		ViewerEmail:     previous.ViewerEmail,
	})
}

// applyViewer mémorise le viewer et recalcule sa personnalisation contre
// le dernier classement connu
func (e *Engine) applyViewer(email string) {
	previous := e.state.Load()
	e.state.Store(&Snapshot{
		Directory:       previous.Directory,
		Leaderboard:     previous.Leaderboard,
		Activities:      previous.Activities,
		Personalization: BuildPersonalizationContext(previous.Leaderboard, email),
		ViewerEmail:     email,
	})
}
