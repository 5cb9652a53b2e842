package cognitive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/abhisek/learnloop/internal/store"
)

// Active-session table bounds. The table is in-memory only: it is
// rebuilt empty on restart, losing at most the in-progress sessions'
// counters (accepted data loss).
const (
	ActiveSessionCap = 4096
	ActiveSessionTTL = 2 * time.Hour
)

// Context identifies what a session or interaction is about.
type Context struct {
	Type string
	ID   string
}

// ErrInvalidContext is returned when a session context lacks a type or id.
var ErrInvalidContext = errors.New("cognitive: session context requires type and id")

// Snapshot is the durable read-path view of a user's cognitive state.
// Recorded is false when no record exists yet; FocusScore then holds
// the neutral default.
type Snapshot struct {
	FocusScore  float64
	Recorded    bool
	LastUpdated time.Time
}

// activeSession is the in-memory per-user tracked session.
type activeSession struct {
	id           string
	context      Context
	startedAt    time.Time
	interactions int
}

// Clock supplies the current time; injectable for tests.
type Clock func() time.Time

// Tracker maintains the per-user focus score and session lifecycle.
// Durable state goes through the repos; only the active-session table
// lives in process memory, in a bounded, TTL-evicting cache.
type Tracker struct {
	states store.CognitiveRepo
	events store.EventRepo
	active *lru.LRU[string, *activeSession]
	log    *zap.Logger
	now    Clock
}

// NewTracker creates a tracker. A nil clock defaults to time.Now.
func NewTracker(states store.CognitiveRepo, events store.EventRepo, log *zap.Logger, now Clock) *Tracker {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		states: states,
		events: events,
		active: lru.NewLRU[string, *activeSession](ActiveSessionCap, nil, ActiveSessionTTL),
		log:    log,
		now:    now,
	}
}

// StartSession begins tracking a session for the user and returns its
// id. If a session is already active for the user, the previous one is
// closed and flushed first (marked superseded) rather than silently
// dropped.
func (t *Tracker) StartSession(ctx context.Context, userID string, sc Context) (string, error) {
	if sc.Type == "" || sc.ID == "" {
		return "", fmt.Errorf("%w: got type=%q id=%q", ErrInvalidContext, sc.Type, sc.ID)
	}

	now := t.now()
	if prev, ok := t.active.Get(userID); ok {
		t.log.Warn("session started while another is active; flushing previous",
			zap.String("user_id", userID),
			zap.String("previous_session_id", prev.id),
			zap.String("previous_context_id", prev.context.ID))
		t.flushSession(ctx, userID, prev, now, true)
	}

	s := &activeSession{
		id:        uuid.NewString(),
		context:   sc,
		startedAt: now,
	}
	t.active.Add(userID, s)
	return s.id, nil
}

// LogInteraction applies one interaction: it increments the active
// session's counter (warning, not error, when no session is active)
// and shifts the durable focus score by the interaction's delta.
func (t *Tracker) LogInteraction(ctx context.Context, userID string, sc Context, in Interaction) error {
	now := t.now()

	if s, ok := t.active.Get(userID); ok {
		s.interactions++
	} else {
		t.log.Warn("interaction logged with no active session",
			zap.String("user_id", userID),
			zap.String("context_id", sc.ID))
	}

	rec, err := t.loadOrInit(ctx, userID, now)
	if err != nil {
		return err
	}
	rec.FocusScore = clampScore(rec.FocusScore + scoreDelta(in))
	rec.LastUpdated = now
	return t.states.Upsert(ctx, rec)
}

// EndSession closes the user's tracked session. The end only processes
// when the given context matches the active session's context id;
// mismatched or missing sessions are logged and ignored.
func (t *Tracker) EndSession(ctx context.Context, userID string, sc Context, durationSeconds int) error {
	s, ok := t.active.Get(userID)
	if !ok {
		t.log.Warn("session end with no active session",
			zap.String("user_id", userID),
			zap.String("context_id", sc.ID))
		return nil
	}
	if s.context.ID != sc.ID {
		t.log.Warn("session end context mismatch; ignoring",
			zap.String("user_id", userID),
			zap.String("active_context_id", s.context.ID),
			zap.String("ended_context_id", sc.ID))
		return nil
	}

	now := t.now()
	if durationSeconds > 0 {
		// Caller-supplied duration wins over wall-clock elapsed.
		s.startedAt = now.Add(-time.Duration(durationSeconds) * time.Second)
	}
	t.flushSession(ctx, userID, s, now, false)
	return nil
}

// flushSession persists the session summary and removes the in-memory
// entry. Persistence failures are logged, not raised: closing a session
// must never fail the caller.
func (t *Tracker) flushSession(ctx context.Context, userID string, s *activeSession, endedAt time.Time, superseded bool) {
	duration := int(endedAt.Sub(s.startedAt).Seconds())
	if duration < 0 {
		duration = 0
	}

	sum := store.SessionSummary{
		SessionID:        s.id,
		ContextType:      s.context.Type,
		ContextID:        s.context.ID,
		StartedAt:        s.startedAt,
		EndedAt:          endedAt,
		DurationSeconds:  duration,
		InteractionCount: s.interactions,
	}
	if err := t.states.AppendSession(ctx, userID, sum); err != nil {
		t.log.Warn("failed to persist session summary",
			zap.String("user_id", userID),
			zap.String("session_id", s.id),
			zap.Error(err))
	}
	if t.events != nil {
		if err := t.events.AppendSessionEvent(ctx, store.SessionEventData{
			UserID:           userID,
			SessionID:        s.id,
			ContextType:      s.context.Type,
			ContextID:        s.context.ID,
			DurationSecs:     duration,
			InteractionCount: s.interactions,
			Superseded:       superseded,
		}); err != nil {
			t.log.Warn("failed to append session event",
				zap.String("user_id", userID),
				zap.String("session_id", s.id),
				zap.Error(err))
		}
	}
	t.active.Remove(userID)
}

// CurrentState returns the durable snapshot for the user. It never
// consults the in-memory active-session table, so the answer is the
// same before and after a process restart.
func (t *Tracker) CurrentState(ctx context.Context, userID string) (Snapshot, error) {
	rec, err := t.states.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Snapshot{FocusScore: NeutralFocusScore}, nil
		}
		return Snapshot{}, err
	}
	return Snapshot{
		FocusScore:  rec.FocusScore,
		Recorded:    true,
		LastUpdated: rec.LastUpdated,
	}, nil
}

// DecaySweep decays every stale record toward neutral. It is safe to
// run periodically and independently of request handling: running it
// twice in quick succession changes nothing the second time.
func (t *Tracker) DecaySweep(ctx context.Context) (int, error) {
	now := t.now()
	stale, err := t.states.ListStale(ctx, now.Add(-DecayGracePeriod))
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range stale {
		rec := stale[i]
		decayed := Decay(rec.FocusScore, now.Sub(rec.LastUpdated))
		if decayed == rec.FocusScore {
			continue
		}
		rec.FocusScore = decayed
		rec.LastUpdated = now
		if err := t.states.Upsert(ctx, &rec); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// ActiveSessionID returns the tracked session id for a user, if any.
// Exposed for observability; recommendation logic never reads it.
func (t *Tracker) ActiveSessionID(userID string) (string, bool) {
	s, ok := t.active.Get(userID)
	if !ok {
		return "", false
	}
	return s.id, true
}

func (t *Tracker) loadOrInit(ctx context.Context, userID string, now time.Time) (*store.CognitiveRecord, error) {
	rec, err := t.states.Get(ctx, userID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return &store.CognitiveRecord{
		UserID:      userID,
		FocusScore:  NeutralFocusScore,
		LastUpdated: now,
	}, nil
}
