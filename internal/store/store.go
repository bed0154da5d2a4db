// Package store holds the authoritative task collection and notifies
// subscribers after every mutation.
//
// The store is not safe for concurrent use. bubbletea delivers every message
// to Update on a single goroutine and all mutations happen there.
package store

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/riordanpawley/taskboard/internal/domain"
	"go.uber.org/zap"
)

// Listener receives a snapshot of the full collection after a mutation.
// The slice is owned by the listener.
type Listener func(tasks []domain.Task)

// Store is the single source of truth for tasks
type Store struct {
	tasks     []domain.Task
	listeners []Listener
	newID     func() string
	now       func() time.Time
	logger    *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithIDFunc overrides task id generation
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store
func New(logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		tasks:  []domain.Task{},
		newID:  uuid.NewString,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every mutation.
// Listeners run synchronously in registration order.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Create appends a new active task and returns its id.
// Inputs are assumed to be validated by the caller.
func (s *Store) Create(title, description string, effort int) string {
	task := domain.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Effort:      effort,
		Status:      domain.StatusActive,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, task)

	s.logger.Debug("task created",
		zap.String("task_id", task.ID),
		zap.Int("effort", effort),
	)

	s.notify()
	return task.ID
}

// ChangeStatus moves the task with the given id to status.
// Unknown ids and unchanged statuses are ignored without notifying.
func (s *Store) ChangeStatus(id string, status domain.Status) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("status change ignored: unknown task", zap.String("task_id", id))
		return
	}
	if s.tasks[i].Status == status {
		s.logger.Debug("status change ignored: unchanged",
			zap.String("task_id", id),
			zap.Stringer("status", status),
		)
		return
	}

	from := s.tasks[i].Status
	s.tasks[i].Status = status

	s.logger.Debug("task status changed",
		zap.String("task_id", id),
		zap.Stringer("from", from),
		zap.Stringer("to", status),
	)

	s.notify()
}

// Tasks returns a snapshot of the collection in insertion order
func (s *Store) Tasks() []domain.Task {
	return slices.Clone(s.tasks)
}

// Get returns a copy of the task with the given id
func (s *Store) Get(id string) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}

// notify hands each listener its own snapshot so no listener can observe
// another's modifications.
func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.Tasks())
	}
}
