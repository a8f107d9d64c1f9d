package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubHTTPServer satisfies the server package's httpServer seam without
// binding a port. ListenAndServe runs on a goroutine in the server, so the
// call counters are guarded.
type StubHTTPServer struct {
	AddrVal    string
	HandlerVal http.Handler

	// ListenErr is returned from every ListenAndServe call; use
	// http.ErrServerClosed to mimic a clean shutdown.
	ListenErr   error
	ShutdownErr error

	// Unblock, when set, makes Shutdown wait until it is closed or the
	// shutdown context expires.
	Unblock chan struct{}

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
}

// NewFailingHTTPServer returns a stub whose ListenAndServe fails with err.
func NewFailingHTTPServer(err error) *StubHTTPServer {
	return &StubHTTPServer{ListenErr: err}
}

// NewBlockingHTTPServer returns a stub whose Shutdown blocks until the
// returned stub's Unblock channel is closed.
func NewBlockingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{Unblock: make(chan struct{})}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	if s.Unblock != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Unblock:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NotFoundHandler()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}
