// Package app holds the per-session state of the requisition client:
// who is logged in, the loaded catalog, the cart and the order list.
package app

import (
	"context"
	"sync"

	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

// Identity is fixed for the life of a session.
type Identity struct {
	ID       int64
	Username string
	IsAdmin  bool
}

type Session struct {
	gw     Gateway
	notify Notifier
	guard  *busyGuard

	mu        sync.RWMutex
	workspace Workspace
}

func NewSession(gw Gateway, n Notifier) *Session {
	if n == nil {
		n = NewLogNotifier(nil)
	}
	return &Session{gw: gw, notify: n, guard: &busyGuard{}}
}

// Login authenticates and picks the role variant once. Any failure reads
// as ErrInvalidCredentials. Catalog and order loading failures are
// notified but do not undo the login.
func (s *Session) Login(ctx context.Context, username, password string) (Workspace, error) {
	var ws Workspace
	err := s.guard.run(func() error {
		resp, err := s.gw.Login(ctx, username, password)
		if err != nil {
			logger.FromCtx(ctx).Info("login failed", zap.String("username", username), zap.Error(err))
			notifyError(ctx, s.notify, "Invalid credentials", err)
			return ErrInvalidCredentials
		}

		id := Identity{ID: resp.User.ID, Username: resp.User.Username, IsAdmin: resp.User.IsAdmin}
		catalog := newCatalog(s.gw, s.notify, s.guard)
		orders := newRequisitions(s.gw, s.notify, s.guard, id)

		_, _ = catalog.load(ctx)
		_ = orders.reload(ctx)

		if id.IsAdmin {
			ws = &AdminWorkspace{identity: id, catalog: catalog, orders: orders}
		} else {
			ws = newEmployeeWorkspace(id, catalog, orders)
		}

		s.mu.Lock()
		s.workspace = ws
		s.mu.Unlock()

		notifyInfo(ctx, s.notify, "Signed in as "+id.Username)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// Logout drops the identity and token locally. The gateway is not told.
func (s *Session) Logout() {
	s.mu.Lock()
	s.workspace = nil
	s.mu.Unlock()
	s.gw.SetToken("")
}

// Workspace returns the active workspace, or ErrNotLoggedIn.
func (s *Session) Workspace() (Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.workspace == nil {
		return nil, ErrNotLoggedIn
	}
	return s.workspace, nil
}

// Busy reports whether a gateway call is in flight.
func (s *Session) Busy() bool {
	return s.guard.Busy()
}
