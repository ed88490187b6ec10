// Package app is the composition root: it wires the store, the scorer
// and the domain services into one engine the CLI drives.
package app

import (
	"context"
	"time"

	"github.com/abhisek/paideia/internal/mastery"
	"github.com/abhisek/paideia/internal/profile"
	"github.com/abhisek/paideia/internal/recommend"
	"github.com/abhisek/paideia/internal/scorer"
	"github.com/abhisek/paideia/internal/session"
	"github.com/abhisek/paideia/internal/store"
)

// DefaultRecommendInterval is how often the batch recommendation loop
// runs when started.
const DefaultRecommendInterval = 6 * time.Hour

// Options configures the engine.
type Options struct {
	Store  *store.Store
	Scorer scorer.Scorer

	// RecommendInterval overrides the batch loop interval.
	RecommendInterval time.Duration

	// SessionOptions are passed through to the session manager.
	SessionOptions []session.Option
}

// Engine bundles the wired services.
type Engine struct {
	Profiles  *profile.Service
	Ledger    *mastery.Ledger
	Sessions  *session.Manager
	Recommend *recommend.Engine

	store             *store.Store
	recommendInterval time.Duration
}

// New wires an Engine from options. The session manager reports
// remediation caps to the recommendation engine, and a session end
// triggers an on-demand generation run for that learner.
func New(opts Options) *Engine {
	st := opts.Store

	ledger := mastery.NewLedger(st.MasteryRepo())
	profiles := profile.NewService(st.ProfileRepo())
	rec := recommend.NewEngine(ledger, st.ProfileRepo(), st.InteractionRepo(), st.RecommendationRepo())

	sessionOpts := append([]session.Option{
		session.WithCapNotify(rec.NoteRemediationCap),
	}, opts.SessionOptions...)

	sessions := session.NewManager(
		profiles,
		ledger,
		opts.Scorer,
		st.InteractionRepo(),
		st.EventRepo(),
		sessionOpts...,
	)

	interval := opts.RecommendInterval
	if interval <= 0 {
		interval = DefaultRecommendInterval
	}

	return &Engine{
		Profiles:          profiles,
		Ledger:            ledger,
		Sessions:          sessions,
		Recommend:         rec,
		store:             st,
		recommendInterval: interval,
	}
}

// Interactions exposes the interaction log for read-side surfaces such
// as session summaries and activity reports.
func (e *Engine) Interactions() store.InteractionRepo {
	return e.store.InteractionRepo()
}

// StartRecommendLoop runs the periodic batch in the background until ctx
// is cancelled.
func (e *Engine) StartRecommendLoop(ctx context.Context) {
	go e.Recommend.RunLoop(ctx, e.recommendInterval)
}

// Close releases the underlying store.
func (e *Engine) Close() error {
	return e.store.Close()
}
