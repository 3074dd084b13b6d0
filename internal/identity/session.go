package identity

import "sync"

// SessionStore tracks who is currently signed in. It is an injectable
// single-writer observable: the provider's session-change stream is the
// writer (plus the optimistic SetPrincipal right after a manual sign-in),
// everyone else reads.
//
// States: uninitialized, loading (subscribed, waiting for the first
// provider event), ready. Initialize is idempotent.
type SessionStore struct {
	provider Provider

	mu          sync.Mutex
	initialized bool
	loading     bool
	principal   *Principal
	cancel      func()
}

func NewSessionStore(provider Provider) *SessionStore {
	return &SessionStore{provider: provider}
}

// Initialize subscribes to the provider's session-change stream. Calling
// it again while loading or after the first event is a no-op.
func (s *SessionStore) Initialize() {
	s.mu.Lock()
	if s.initialized || s.loading {
		s.mu.Unlock()
		return
	}
	s.loading = true
	s.mu.Unlock()

	// The subscription callback may run on any goroutine the provider
	// chooses; all state changes funnel through the mutex.
	cancel := s.provider.Subscribe(func(p *Principal) {
		s.mu.Lock()
		s.principal = p
		s.initialized = true
		s.loading = false
		s.mu.Unlock()
	})

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()
}

// SetPrincipal records an optimistic update, used right after a manual
// sign-in before the provider's own callback arrives.
func (s *SessionStore) SetPrincipal(p *Principal) {
	s.mu.Lock()
	s.principal = p
	s.mu.Unlock()
}

// Current returns the signed-in principal, or nil.
func (s *SessionStore) Current() *Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal
}

func (s *SessionStore) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Close detaches from the provider stream.
func (s *SessionStore) Close() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}
