package feeds

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/engine"
	"github.com/Thetis26/ChoiceCrafterFlutter-sub002/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Canaux NOTIFY émis par les triggers de la base à chaque écriture
// dans les collections
const (
	UsersChannel       = "users_changed"
	EnrollmentsChannel = "course_enrollments_changed"
)

const queryTimeout = 10 * time.Second

// Watcher abonne le moteur aux deux feeds : chaque notification (et un
// rafraîchissement périodique de filet de sécurité) déclenche la relecture
// complète de la collection concernée, poussée au moteur comme snapshot de
// remplacement. Les deux abonnements sont indépendants et peuvent livrer
// dans n'importe quel ordre.
type Watcher struct {
	pool     *pgxpool.Pool
	engine   *engine.Engine
	dsn      string
	refresh  time.Duration
	listener *pq.Listener
	done     chan struct{}
	stopOnce sync.Once
}

// NewWatcher crée un watcher de feeds non démarré
func NewWatcher(pool *pgxpool.Pool, eng *engine.Engine, dsn string, refresh time.Duration) *Watcher {
	if refresh <= 0 {
		refresh = time.Minute
	}
	return &Watcher{
		pool:    pool,
		engine:  eng,
		dsn:     dsn,
		refresh: refresh,
		done:    make(chan struct{}),
	}
}

// Start abonne les canaux LISTEN, pousse un premier snapshot de chaque
// collection puis démarre la boucle d'écoute
func (w *Watcher) Start() error {
	w.listener = pq.NewListener(w.dsn, 10*time.Second, time.Minute, func(event pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warning("Listener PostgreSQL: %v", err)
		}
	})

	if err := w.listener.Listen(UsersChannel); err != nil {
		return err
	}
	if err := w.listener.Listen(EnrollmentsChannel); err != nil {
		return err
	}

	w.refreshUsers()
	w.refreshEnrollments()

	go w.loop()
	logger.Success("Feed watcher started (refresh every %s)", w.refresh)
	return nil
}

// Stop coupe les deux abonnements ensemble ; l'état dérivé du moteur est
// abandonné par le propriétaire de la session
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		if w.listener != nil {
			w.listener.Close()
		}
	})
}

func (w *Watcher) loop() {
	ticker := time.NewTicker(w.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case notification := <-w.listener.Notify:
			if notification == nil {
				// Reconnexion du listener : des notifications ont pu se
				// perdre, on recharge les deux collections
				w.refreshUsers()
				w.refreshEnrollments()
				continue
			}
			logger.Feed(notification.Channel, "notification reçue")
			switch notification.Channel {
			case UsersChannel:
				w.refreshUsers()
			case EnrollmentsChannel:
				w.refreshEnrollments()
			}
		case <-ticker.C:
			if err := w.listener.Ping(); err != nil {
				logger.Warning("Ping listener: %v", err)
			}
			w.refreshUsers()
			w.refreshEnrollments()
		}
	}
}

func (w *Watcher) refreshUsers() {
	docs, err := w.loadCollection(`SELECT doc FROM users`)
	if err != nil {
		w.engine.PushUsers(engine.Update{Err: err})
		return
	}
	w.engine.PushUsers(engine.Update{Docs: docs})
}

func (w *Watcher) refreshEnrollments() {
	docs, err := w.loadCollection(`SELECT doc FROM course_enrollments`)
	if err != nil {
		w.engine.PushEnrollments(engine.Update{Err: err})
		return
	}
	w.engine.PushEnrollments(engine.Update{Docs: docs})
}

// loadCollection relit l'intégralité d'une collection de documents JSONB
func (w *Watcher) loadCollection(query string) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := w.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
