package admin

import (
	"sync"

	"go.uber.org/zap"
)

// Admin is the view registry handed to the UI layer. Registration is the
// only mutating operation; lookups after startup are read-only.
type Admin struct {
	logger *zap.Logger

	mu    sync.RWMutex
	views map[string]*ModelView
	order []string
}

// AdminOption configures an Admin.
type AdminOption func(*Admin)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *zap.Logger) AdminOption {
	return func(a *Admin) { a.logger = logger }
}

// New creates an empty registry.
func New(opts ...AdminOption) *Admin {
	a := &Admin{
		logger: zap.NewNop(),
		views:  make(map[string]*ModelView),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// AddView registers a view under its identity.
func (a *Admin) AddView(view *ModelView) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.views[view.Identity()]; exists {
		return DuplicateViewError{Identity: view.Identity()}
	}
	a.views[view.Identity()] = view
	a.order = append(a.order, view.Identity())

	a.logger.Info("registered admin view",
		zap.String("identity", view.Identity()),
		zap.String("model", view.Schema().Name),
		zap.Int("fields", len(view.Fields())),
	)
	return nil
}

// View looks up a registered view by identity.
func (a *Admin) View(identity string) (*ModelView, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	view, ok := a.views[identity]
	return view, ok
}

// Views returns all views in registration order.
func (a *Admin) Views() []*ModelView {
	a.mu.RLock()
	defer a.mu.RUnlock()
	views := make([]*ModelView, 0, len(a.order))
	for _, identity := range a.order {
		views = append(views, a.views[identity])
	}
	return views
}
