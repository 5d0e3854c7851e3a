package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	reqctx "github.com/jsamuelsen/quotevault/internal/app/context"
	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

const currentUserKey = "current-user"

// SignIn exchanges credentials for a session.
func (r *QuoteRepository) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	creds := domain.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	session, err := r.auth.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		r.loggerFor(ctx).InfoContext(ctx, "sign in rejected", slog.Any("error", err))
		return nil, classify(err)
	}

	r.rememberSession(ctx, session)

	return session, nil
}

// SignUp creates an account. The returned session is nil when the provider
// requires email confirmation first.
func (r *QuoteRepository) SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error) {
	creds := domain.Credentials{
		Email:       strings.TrimSpace(email),
		Password:    password,
		DisplayName: strings.TrimSpace(displayName),
	}
	if err := creds.ValidateSignUp(); err != nil {
		return nil, err
	}

	session, err := r.auth.SignUp(ctx, creds.Email, creds.Password, creds.DisplayName)
	if err != nil {
		r.loggerFor(ctx).InfoContext(ctx, "sign up rejected", slog.Any("error", err))
		return nil, classify(err)
	}

	r.rememberSession(ctx, session)

	return session, nil
}

// SignOut revokes the session carried by ctx. The local memory of the
// session is dropped even when the remote revocation fails.
func (r *QuoteRepository) SignOut(ctx context.Context) error {
	r.forgetSession(ctx, sessionKey(ctx))

	if rc := reqctx.FromContext(ctx); rc != nil {
		rc.Forget(currentUserKey)
	}

	if err := r.auth.SignOut(ctx); err != nil {
		return classify(err)
	}

	return nil
}

// ResetPassword asks the provider to send a password reset email.
func (r *QuoteRepository) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return domain.NewValidationError("email", "must be an email address")
	}

	return classify(r.auth.ResetPassword(ctx, email))
}

// CurrentUser returns the signed-in user, or domain.ErrNotAuthenticated.
// The lookup is memoized for the rest of the request.
func (r *QuoteRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := reqctx.Get(ctx, reqctx.Provider[*domain.User]{
		Key:   currentUserKey,
		Fetch: r.resolveUser,
	})
	if err != nil {
		return nil, classify(err)
	}

	if user == nil || user.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	return user, nil
}

// resolveUser asks the auth backend who the session belongs to. While the
// backend is unreachable, the user last resolved for the same token answers
// instead, until the remembered session expires.
func (r *QuoteRepository) resolveUser(ctx context.Context) (*domain.User, error) {
	key := sessionKey(ctx)

	user, err := r.auth.CurrentUser(ctx)

	switch {
	case err == nil:
		if user != nil && user.ID != "" {
			r.remember(ctx, key, *user)
		}

		return user, nil
	case domain.IsNotAuthenticated(err):
		r.forgetSession(ctx, key)
		return nil, err
	case key == "" || !domain.IsUnavailable(err):
		return nil, err
	}

	remembered, cacheErr := r.sessions.SessionUser(ctx, key)
	if cacheErr != nil {
		if !domain.IsNotFound(cacheErr) {
			r.loggerFor(ctx).WarnContext(ctx, "reading remembered session", slog.Any("error", cacheErr))
		}

		return nil, err
	}

	r.loggerFor(ctx).InfoContext(ctx, "auth backend unavailable, using remembered session",
		slog.String("user_id", remembered.ID), slog.Any("error", err))
	r.metrics.Fallbacks.WithLabelValues("current_user").Inc()

	return &remembered, nil
}

// requireUser resolves the signed-in user for operation, which needs one.
func (r *QuoteRepository) requireUser(ctx context.Context, operation string) (*domain.User, error) {
	user, err := r.CurrentUser(ctx)
	if err != nil {
		if domain.IsNotAuthenticated(err) {
			return nil, domain.NewNotAuthenticatedError(operation)
		}

		return nil, err
	}

	return user, nil
}

func (r *QuoteRepository) rememberSession(ctx context.Context, session *domain.Session) {
	if session == nil || session.AccessToken == "" || session.User.ID == "" {
		return
	}

	r.remember(ctx, tokenKey(session.AccessToken), session.User)
}

func (r *QuoteRepository) remember(ctx context.Context, key string, user domain.User) {
	if key == "" {
		return
	}

	expiresAt := time.Now().Add(r.offlineSessionTTL)

	if err := r.sessions.RememberSession(context.WithoutCancel(ctx), key, user, expiresAt); err != nil {
		r.loggerFor(ctx).WarnContext(ctx, "remembering session", slog.Any("error", err))
		r.metrics.MirrorFailures.WithLabelValues("remember_session").Inc()
	}
}

func (r *QuoteRepository) forgetSession(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := r.sessions.ForgetSession(context.WithoutCancel(ctx), key); err != nil {
		r.loggerFor(ctx).WarnContext(ctx, "forgetting session", slog.Any("error", err))
	}
}

// sessionKey is the cache key of the session token in ctx, or "" when the
// caller is anonymous.
func sessionKey(ctx context.Context) string {
	token := ports.SessionTokenFromContext(ctx)
	if token == nil {
		return ""
	}

	return tokenKey(token.AccessToken)
}

func tokenKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))

	return hex.EncodeToString(sum[:])
}
