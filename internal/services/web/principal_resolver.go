package web

import (
	"context"
	"net/http"
	"strings"
	"sync"

	platformi18n "github.com/aislehq/aisle/internal/platform/i18n"
	module "github.com/aislehq/aisle/internal/services/web/module"
	"github.com/aislehq/aisle/internal/services/web/platform/authctx"
	webi18n "github.com/aislehq/aisle/internal/services/web/platform/i18n"
	"github.com/aislehq/aisle/internal/services/web/platform/sessioncookie"
)

// requestPrincipalState memoizes per-request principal lookups so resolver
// seams can be called from several handlers without repeating planner round
// trips.
type requestPrincipalState struct {
	sessionOnce sync.Once
	session     module.Session
	sessionOK   bool

	accountOnce sync.Once
	account     module.Account
	accountOK   bool

	languageOnce sync.Once
	language     string
}

type requestPrincipalStateKey struct{}

type principalResolver struct {
	sessionClient module.SessionClient
	accountClient module.AccountClient
}

func newPrincipalResolver(cfg Config) principalResolver {
	return principalResolver{
		sessionClient: cfg.SessionClient,
		accountClient: cfg.AccountClient,
	}
}

func (p principalResolver) resolveToken(r *http.Request) (string, bool) {
	return sessioncookie.Read(r)
}

func (p principalResolver) resolveSessionUncached(ctx context.Context, token string) (module.Session, bool) {
	if p.sessionClient == nil {
		return module.Session{}, false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return module.Session{}, false
	}
	session, err := p.sessionClient.GetCurrentSession(ctx, token)
	if err != nil {
		return module.Session{}, false
	}
	return session, true
}

func (p principalResolver) resolveRequestSession(r *http.Request) (module.Session, bool) {
	if r == nil {
		return module.Session{}, false
	}
	resolve := func() (module.Session, bool) {
		token, ok := p.resolveToken(r)
		if !ok {
			return module.Session{}, false
		}
		return p.resolveSessionUncached(r.Context(), token)
	}
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.sessionOnce.Do(func() {
			state.session, state.sessionOK = resolve()
		})
		return state.session, state.sessionOK
	}
	return resolve()
}

func (p principalResolver) resolveAccountUncached(r *http.Request) (module.Account, bool) {
	if p.accountClient == nil {
		return module.Account{}, false
	}
	session, ok := p.resolveRequestSession(r)
	if !ok {
		return module.Account{}, false
	}
	token, _ := p.resolveToken(r)
	account, err := p.accountClient.GetAccount(r.Context(), token, session.UserID)
	if err != nil {
		return module.Account{}, false
	}
	return account, true
}

func (p principalResolver) resolveAccount(r *http.Request) (module.Account, bool) {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.accountOnce.Do(func() {
			state.account, state.accountOK = p.resolveAccountUncached(r)
		})
		return state.account, state.accountOK
	}
	return p.resolveAccountUncached(r)
}

func (p principalResolver) resolveViewer(r *http.Request) module.Viewer {
	account, ok := p.resolveAccount(r)
	if !ok {
		return module.Viewer{}
	}
	return module.Viewer{DisplayName: account.DisplayName, Email: account.Email}
}

func (p principalResolver) resolveRequestLanguageUncached(r *http.Request) string {
	fallback := webi18n.ResolveRequestTag(r).String()
	account, ok := p.resolveAccount(r)
	if !ok {
		return fallback
	}
	if tag, ok := platformi18n.ParseTag(account.Locale); ok {
		return tag.String()
	}
	return fallback
}

func (p principalResolver) resolveRequestLanguage(r *http.Request) string {
	if state := requestPrincipalStateFromRequest(r); state != nil {
		state.languageOnce.Do(func() {
			state.language = p.resolveRequestLanguageUncached(r)
		})
		return state.language
	}
	return p.resolveRequestLanguageUncached(r)
}

func (p principalResolver) authRequired() func(*http.Request) bool {
	validated := authctx.ValidatedSessionAuth(func(ctx context.Context, token string) bool {
		session, ok := p.resolveSessionUncached(ctx, token)
		if !ok {
			return false
		}
		if state := requestPrincipalStateFromContext(ctx); state != nil {
			state.sessionOnce.Do(func() {
				state.session = session
				state.sessionOK = true
			})
		}
		return true
	})
	return func(r *http.Request) bool {
		return validated(r)
	}
}
