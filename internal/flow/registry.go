package flow

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultRegistrySize is used when NewRegistry gets a non-positive size.
const DefaultRegistrySize = 1024

// Registry keeps the most recently used session controllers. An evicted
// session starts again at Welcome when it is resumed.
type Registry struct {
	prescriber Prescriber
	recorder   Recorder

	mu    sync.Mutex
	cache *lru.Cache[string, *Controller]
}

func NewRegistry(size int, prescriber Prescriber, recorder Recorder) (*Registry, error) {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	cache, err := lru.New[string, *Controller](size)
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Registry{
		prescriber: prescriber,
		recorder:   recorder,
		cache:      cache,
	}, nil
}

// Resume returns the controller for sessionID, creating it if absent. An
// empty sessionID gets a fresh one. created reports whether a new controller
// was made.
func (r *Registry) Resume(sessionID string) (ctrl *Controller, created bool) {
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ctrl, ok := r.cache.Get(sessionID); ok {
		return ctrl, false
	}
	ctrl = NewController(sessionID, r.prescriber, r.recorder)
	r.cache.Add(sessionID, ctrl)
	return ctrl, true
}

// Get returns an existing controller or domain.ErrNotFound.
func (r *Registry) Get(sessionID string) (*Controller, error) {
	ctrl, ok := r.cache.Get(sessionID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ctrl, nil
}

func (r *Registry) Len() int {
	return r.cache.Len()
}

// NewSessionID returns an id of the form session_<unix millis>_<9 hex chars>.
func NewSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix)
}
