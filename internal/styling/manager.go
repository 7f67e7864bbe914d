package styling

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/solardome/mpg-dashboard/internal/report"
)

// EnvAPIKey is the environment variable holding the API credential.
const EnvAPIKey = "ANTHROPIC_API_KEY"

// State is the styling-request lifecycle: Idle until the first trigger, then
// Requesting, terminating in Applied or Failed until the next trigger.
type State int

const (
	StateIdle State = iota
	StateRequesting
	StateApplied
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRequesting:
		return "requesting"
	case StateApplied:
		return "applied"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// User-visible status texts. The error casings follow the original UI.
const (
	StatusRequesting        = "Requesting AI styling..."
	StatusApplied           = "Styling applied successfully!"
	StatusMissingCredential = "ERROR: ANTHROPIC_API_KEY environment variable not set"
	StatusNoCSS             = "Error: Could not extract CSS from the API response"
)

// Trigger no-ops. Neither changes manager state.
var (
	ErrEmptyPrompt     = errors.New("empty styling prompt")
	ErrRequestInFlight = errors.New("styling request already in flight")
)

// CredentialFunc resolves the API credential at request time.
type CredentialFunc func() string

// EnvCredential reads the credential from the process environment. It is
// called per request, never cached at startup.
func EnvCredential() string {
	return os.Getenv(EnvAPIKey)
}

// Snapshot is the render-facing view of the manager.
type Snapshot struct {
	State   State
	Status  string
	LastCSS string
}

// Manager owns the styling-request state machine. Requests are serialized: a
// trigger while one is in flight is rejected and changes nothing.
type Manager struct {
	client     *Client
	credential CredentialFunc
	applier    Applier
	log        *report.AuditLogger

	mu       sync.Mutex
	inFlight bool
	state    State
	status   string
	lastCSS  string
}

func NewManager(client *Client, credential CredentialFunc, applier Applier, log *report.AuditLogger) *Manager {
	if credential == nil {
		credential = EnvCredential
	}
	return &Manager{
		client:     client,
		credential: credential,
		applier:    applier,
		log:        log,
	}
}

// Trigger runs one styling request synchronously. A blank prompt returns
// ErrEmptyPrompt and an in-flight request returns ErrRequestInFlight, both
// without touching state; every other outcome lands in the status snapshot.
func (m *Manager) Trigger(ctx context.Context, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}

	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return ErrRequestInFlight
	}
	m.inFlight = true
	m.state = StateRequesting
	m.status = StatusRequesting
	m.mu.Unlock()

	requestID := uuid.NewString()
	m.log.Info("styling.requested", map[string]interface{}{
		"request_id": requestID,
		"prompt_len": len(prompt),
	})

	key := strings.TrimSpace(m.credential())
	if key == "" {
		m.fail(requestID, StatusMissingCredential)
		return nil
	}

	css, err := m.client.GenerateCSS(ctx, key, prompt)
	if err != nil {
		if errors.Is(err, ErrNoCSS) {
			m.fail(requestID, StatusNoCSS)
		} else {
			m.fail(requestID, "ERROR: "+err.Error())
		}
		return nil
	}

	m.applier.ApplyStylesheet(css)

	m.mu.Lock()
	m.lastCSS = css
	m.state = StateApplied
	m.status = StatusApplied
	m.inFlight = false
	m.mu.Unlock()

	m.log.Info("styling.applied", map[string]interface{}{
		"request_id": requestID,
		"css_len":    len(css),
	})
	return nil
}

func (m *Manager) fail(requestID, status string) {
	m.mu.Lock()
	m.state = StateFailed
	m.status = status
	m.inFlight = false
	m.mu.Unlock()

	m.log.Error("styling.failed", map[string]interface{}{
		"request_id": requestID,
		"status":     status,
	})
}

// Snapshot returns the current state for rendering.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		State:   m.state,
		Status:  m.status,
		LastCSS: m.lastCSS,
	}
}
