package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PouchSim_Go/internal/command"
	"github.com/osse101/PouchSim_Go/internal/domain"
	"github.com/osse101/PouchSim_Go/internal/event"
	"github.com/osse101/PouchSim_Go/internal/logger"
	"github.com/osse101/PouchSim_Go/internal/pouch"
	"github.com/osse101/PouchSim_Go/internal/repository"
)

// Service manages pouch sessions
type Service interface {
	Create(ctx context.Context, records []domain.StackRecord) (*View, error)
	Get(ctx context.Context, id string) (*View, error)
	Delete(ctx context.Context, id string) error

	// Apply runs a batch of commands. The batch is atomic: if any command
	// fails the pouch is left as it was before the batch.
	Apply(ctx context.Context, id string, cmds []command.Command) (*ApplyResult, error)
	Undo(ctx context.Context, id string) (*View, error)
	Branch(ctx context.Context, id string) (*View, error)

	// Snapshot operations return domain.ErrSnapshotsDisabled without a repository
	Save(ctx context.Context, id, name string) (*domain.Snapshot, error)
	Restore(ctx context.Context, name string) (*View, error)
	ListSnapshots(ctx context.Context, limit int) ([]domain.SnapshotSummary, error)
	DeleteSnapshot(ctx context.Context, name string) error

	Count() int
}

// ApplyResult is the session after a batch plus what each command did
type ApplyResult struct {
	Session *View            `json:"session"`
	Results []command.Result `json:"results"`
}

// Options sizes the session store
type Options struct {
	CacheSize    int
	TTL          time.Duration
	HistoryDepth int
}

type service struct {
	sessions     *expirable.LRU[string, *Session]
	catalog      pouch.Catalog
	exec         *command.Executor
	snapshots    repository.Snapshot
	bus          event.Bus
	historyDepth int
}

// NewService creates a session service. snapshots may be nil to disable
// persistence; bus may be nil to disable events.
func NewService(catalog pouch.Catalog, snapshots repository.Snapshot, bus event.Bus, opts Options) Service {
	s := &service{
		catalog:      catalog,
		exec:         command.NewExecutor(catalog),
		snapshots:    snapshots,
		bus:          bus,
		historyDepth: opts.HistoryDepth,
	}
	s.sessions = expirable.NewLRU[string, *Session](opts.CacheSize, s.onEvict, opts.TTL)
	return s
}

// onEvict runs with the store locked, so it must not take a session lock
func (s *service) onEvict(id string, sess *Session) {
	if sess.deleted.Load() {
		return
	}
	ctx := context.Background()
	logger.FromContext(ctx).Info(LogMsgSessionExpired, logger.AttrKeySessionID, id)
	s.publish(ctx, event.SessionExpired, event.SessionPayloadV1{SessionID: id, ParentID: sess.ParentID})
}

func (s *service) Create(ctx context.Context, records []domain.StackRecord) (*View, error) {
	stacks, err := pouch.FromRecords(s.catalog, records)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildPouch, err)
	}

	sess := newSession(uuid.New().String(), "", pouch.New(stacks))
	s.sessions.Add(sess.ID, sess)

	sess.mu.Lock()
	v := sess.view()
	sess.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionCreated, logger.AttrKeySessionID, sess.ID, "slots", v.Len())
	s.publish(ctx, event.SessionCreated, event.SessionPayloadV1{SessionID: sess.ID, Slots: v.Len()})
	return v, nil
}

func (s *service) Get(_ context.Context, id string) (*View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.deleted.Store(true)
	s.sessions.Remove(id)

	logger.FromContext(ctx).Info(LogMsgSessionDeleted, logger.AttrKeySessionID, id)
	s.publish(ctx, event.SessionDeleted, event.SessionPayloadV1{SessionID: id, ParentID: sess.ParentID})
	return nil
}

func (s *service) Apply(ctx context.Context, id string, cmds []command.Command) (*ApplyResult, error) {
	if len(cmds) == 0 {
		return nil, fmt.Errorf("%w: no commands", domain.ErrInvalidInput)
	}
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).With(logger.AttrKeySessionID, id)

	sess.mu.Lock()
	working := sess.slots.DeepClone()
	results, err := s.exec.ExecuteAll(ctx, working, cmds)
	if err != nil {
		slots := sess.slots.Len()
		sess.mu.Unlock()

		log.Info(LogMsgCommandsRejected, "error", err)
		s.publish(ctx, event.CommandsRejected, event.SessionPayloadV1{SessionID: id, Commands: len(results), Slots: slots})
		return nil, err
	}
	sess.pushHistory(sess.slots, s.historyDepth)
	sess.slots = working
	sess.updatedAt = time.Now().UTC()
	v := sess.view()
	sess.mu.Unlock()

	s.touch(sess)
	log.Debug(LogMsgCommandsApplied, "commands", len(cmds), "slots", v.Len())
	s.publish(ctx, event.CommandsApplied, event.SessionPayloadV1{SessionID: id, Commands: len(cmds), Slots: v.Len()})
	return &ApplyResult{Session: v, Results: results}, nil
}

func (s *service) Undo(ctx context.Context, id string) (*View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	prev, ok := sess.popHistory()
	if !ok {
		sess.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrNothingToUndo, id)
	}
	sess.slots = prev
	sess.updatedAt = time.Now().UTC()
	v := sess.view()
	sess.mu.Unlock()

	s.touch(sess)
	logger.FromContext(ctx).Debug(LogMsgSessionUndone, logger.AttrKeySessionID, id, "undo_depth", v.UndoDepth)
	s.publish(ctx, event.SessionUndone, event.SessionPayloadV1{SessionID: id, Slots: v.Len()})
	return v, nil
}

// Branch starts a what-if session from a copy of the parent's pouch. The
// child starts with an empty history.
func (s *service) Branch(ctx context.Context, id string) (*View, error) {
	parent, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	parent.mu.Lock()
	clone := parent.slots.DeepClone()
	parent.mu.Unlock()

	child := newSession(uuid.New().String(), parent.ID, clone)
	s.sessions.Add(child.ID, child)

	child.mu.Lock()
	v := child.view()
	child.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSessionBranched, logger.AttrKeySessionID, child.ID, "parent_id", parent.ID)
	s.publish(ctx, event.SessionBranched, event.SessionPayloadV1{SessionID: child.ID, ParentID: parent.ID, Slots: v.Len()})
	return v, nil
}

func (s *service) Save(ctx context.Context, id, name string) (*domain.Snapshot, error) {
	if s.snapshots == nil {
		return nil, domain.ErrSnapshotsDisabled
	}
	if err := validateSnapshotName(name); err != nil {
		return nil, err
	}
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	snap := &domain.Snapshot{Name: name, Stacks: sess.slots.Records()}
	sess.mu.Unlock()

	if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveSnapshot, err)
	}

	logger.FromContext(ctx).Info(LogMsgSnapshotSaved, logger.AttrKeySessionID, id, logger.AttrKeySnapshot, name)
	s.publish(ctx, event.SnapshotSaved, event.SessionPayloadV1{SessionID: id, Snapshot: name, Slots: len(snap.Stacks)})
	return snap, nil
}

// Restore opens a new session from a saved snapshot
func (s *service) Restore(ctx context.Context, name string) (*View, error) {
	if s.snapshots == nil {
		return nil, domain.ErrSnapshotsDisabled
	}
	snap, err := s.snapshots.GetSnapshot(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSnapshot, err)
	}

	stacks, err := pouch.FromRecords(s.catalog, snap.Stacks)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRestoreSnapshot, name, err)
	}

	sess := newSession(uuid.New().String(), "", pouch.New(stacks))
	s.sessions.Add(sess.ID, sess)

	sess.mu.Lock()
	v := sess.view()
	sess.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSnapshotRestored, logger.AttrKeySessionID, sess.ID, logger.AttrKeySnapshot, name)
	s.publish(ctx, event.SnapshotRestored, event.SessionPayloadV1{SessionID: sess.ID, Snapshot: name, Slots: v.Len()})
	return v, nil
}

func (s *service) ListSnapshots(ctx context.Context, limit int) ([]domain.SnapshotSummary, error) {
	if s.snapshots == nil {
		return nil, domain.ErrSnapshotsDisabled
	}
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}
	summaries, err := s.snapshots.ListSnapshots(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSnapshots, err)
	}
	return summaries, nil
}

func (s *service) DeleteSnapshot(ctx context.Context, name string) error {
	if s.snapshots == nil {
		return domain.ErrSnapshotsDisabled
	}
	if err := s.snapshots.DeleteSnapshot(ctx, name); err != nil {
		return fmt.Errorf(ErrMsgDeleteSnapshot, err)
	}
	return nil
}

func (s *service) Count() int {
	return s.sessions.Len()
}

func (s *service) lookup(id string) (*Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf(ErrFmtSessionNotFound, domain.ErrSessionNotFound, id)
	}
	return sess, nil
}

// touch restarts the TTL of a session that is still stored
func (s *service) touch(sess *Session) {
	if sess.deleted.Load() || !s.sessions.Contains(sess.ID) {
		return
	}
	s.sessions.Add(sess.ID, sess)
}

func (s *service) publish(ctx context.Context, t event.Type, payload event.SessionPayloadV1) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.NewSessionEvent(t, payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", t, "error", err)
	}
}

func validateSnapshotName(name string) error {
	if name == "" || len(name) > MaxSnapshotNameLength {
		return fmt.Errorf(ErrFmtSnapshotName, domain.ErrInvalidInput, MaxSnapshotNameLength)
	}
	return nil
}
