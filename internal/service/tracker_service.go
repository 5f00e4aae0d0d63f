package service

import (
	"context"

	"github.com/plof27/atomichron/internal/domain"
	"github.com/plof27/atomichron/internal/storage"
)

// TrackerService drives the entry lifecycle. Every mutation is one
// lock -> load -> mutate -> save sequence; queries skip the save.
type TrackerService interface {
	// Start begins a new entry. If another entry was running it is stopped
	// first with no overrides and returned as stopped.
	Start(ctx context.Context, project, description *string, tags []string) (started, stopped *domain.Entry, err error)

	// Stop finishes the running entry, applying overrides. Returns nil when
	// nothing was running; that is a normal outcome, not an error. The
	// boolean reports that the entry was already closed and its end time has
	// been left untouched.
	Stop(ctx context.Context, overrides domain.StopOverrides) (*domain.Entry, bool, error)

	// Clear discards the running entry without keeping it. Returns nil when
	// nothing was running.
	Clear(ctx context.Context) (*domain.Entry, error)

	// Current returns the running entry, or nil if idle
	Current(ctx context.Context) (*domain.Entry, error)

	// Entries returns all entries ordered by start time
	Entries(ctx context.Context, ascending bool) ([]*domain.Entry, error)
}

type trackerService struct {
	store storage.Store
	lock  *storage.Lock // nil disables cross-process locking
}

// NewTrackerService creates a new tracker service
func NewTrackerService(store storage.Store, lock *storage.Lock) TrackerService {
	return &trackerService{
		store: store,
		lock:  lock,
	}
}

func (s *trackerService) Start(ctx context.Context, project, description *string, tags []string) (*domain.Entry, *domain.Entry, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, nil, err
	}
	defer release()

	list, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	started, stopped, err := list.Start(project, description, tags)
	if err != nil {
		return nil, nil, err
	}

	if err := s.store.Save(ctx, list); err != nil {
		return nil, nil, err
	}

	return started, stopped, nil
}

func (s *trackerService) Stop(ctx context.Context, overrides domain.StopOverrides) (*domain.Entry, bool, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, false, err
	}
	defer release()

	list, err := s.store.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	entry, alreadyClosed, err := list.StopCurrent(overrides)
	if err != nil {
		return nil, false, err
	}
	if entry == nil {
		// Idle; nothing changed, so don't touch the data file.
		return nil, false, nil
	}

	if err := s.store.Save(ctx, list); err != nil {
		return nil, false, err
	}

	return entry, alreadyClosed, nil
}

func (s *trackerService) Clear(ctx context.Context) (*domain.Entry, error) {
	release, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	list, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := list.ClearCurrent()
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	if err := s.store.Save(ctx, list); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *trackerService) Current(ctx context.Context) (*domain.Entry, error) {
	list, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return list.Current()
}

func (s *trackerService) Entries(ctx context.Context, ascending bool) ([]*domain.Entry, error) {
	list, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return list.InOrder(ascending), nil
}

// acquire takes the cross-process lock, returning a release func. With no
// lock configured it is a no-op.
func (s *trackerService) acquire() (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	if err := s.lock.Acquire(); err != nil {
		return nil, err
	}
	return func() { _ = s.lock.Release() }, nil
}
