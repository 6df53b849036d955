package hotels

import (
	"strings"
	"sync"
)

// redirectGuard makes the single-client redirect a one-shot decision. The
// guard fires at most once per session for each distinct roster value, so
// re-rendering the landing page with an unchanged roster never re-navigates,
// while a roster change re-arms the guard.
type redirectGuard struct {
	mu    sync.Mutex
	fired map[string]map[string]struct{}
}

func newRedirectGuard() *redirectGuard {
	return &redirectGuard{fired: make(map[string]map[string]struct{})}
}

// rosterFingerprint keys a guard decision on the exact roster value.
func rosterFingerprint(clientIDs []string) string {
	return strings.Join(clientIDs, "\x1f")
}

// maxTrackedSessions bounds guard memory. Sessions expire server-side, so
// resetting the whole table only risks one extra redirect per live session.
const maxTrackedSessions = 1024

// fire reports whether the redirect should happen for this session and
// roster value, recording the decision when it does.
func (g *redirectGuard) fire(sessionID string, fingerprint string) bool {
	if g == nil || sessionID == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	seen, ok := g.fired[sessionID]
	if !ok {
		if len(g.fired) >= maxTrackedSessions {
			clear(g.fired)
		}
		seen = make(map[string]struct{})
		g.fired[sessionID] = seen
	}
	if _, done := seen[fingerprint]; done {
		return false
	}
	seen[fingerprint] = struct{}{}
	return true
}
