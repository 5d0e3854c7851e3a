package acl

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/jsamuelsen/quotevault/internal/adapters/clients"
	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
	"github.com/jsamuelsen/quotevault/internal/ports"
)

const (
	// AuthServiceName identifies the auth backend in errors.
	AuthServiceName = "auth-backend"

	favoritesPath   = "/rest/v1/user_favorites"
	collectionsPath = "/rest/v1/collections"

	defaultPollInterval = 15 * time.Second
)

// NewAuthFunc returns the credential hook for the backend client: the
// project key on every request, and the caller's session token as bearer
// when ctx carries one, the project key otherwise.
func NewAuthFunc(anonKey string) func(ctx context.Context, req *http.Request) {
	return func(ctx context.Context, req *http.Request) {
		req.Header.Set("apikey", anonKey)

		bearer := anonKey
		if token := ports.SessionTokenFromContext(ctx); token != nil {
			bearer = token.AccessToken
		}

		req.Header.Set("Authorization", "Bearer "+bearer)
	}
}

// AuthAdapterConfig configures an AuthAdapter.
type AuthAdapterConfig struct {
	Client *clients.Client
	Logger *slog.Logger

	// PollInterval is how often SubscribeFavoriteIDs re-reads the remote set.
	PollInterval time.Duration

	// Now is overridable in tests.
	Now func() time.Time
}

// AuthAdapter implements ports.AuthSource and ports.CollectionSource against
// a GoTrue auth API and the PostgREST favorites and collections tables.
type AuthAdapter struct {
	BaseAdapter

	logger       *slog.Logger
	pollInterval time.Duration
	now          func() time.Time
}

// NewAuthAdapter creates the remote auth source. Panics if Client is nil.
func NewAuthAdapter(cfg AuthAdapterConfig) *AuthAdapter {
	if cfg.Client == nil {
		panic("AuthAdapter: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &AuthAdapter{
		BaseAdapter:  NewBaseAdapter(cfg.Client, AuthServiceName),
		logger:       logger.With(slog.String("component", "acl.AuthAdapter")),
		pollInterval: interval,
		now:          now,
	}
}

type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	CreatedAt    Timestamp `json:"created_at"`
	UserMetadata struct {
		DisplayName string `json:"display_name"`
		FullName    string `json:"full_name"`
		AvatarURL   string `json:"avatar_url"`
	} `json:"user_metadata"`
}

type sessionRecord struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	User         *userRecord `json:"user"`

	// Sign-up without auto-confirm answers with the bare user.
	userRecord
}

func translateUser(ext *userRecord) (domain.User, error) {
	if err := ValidateRequired(ext.ID, "id"); err != nil {
		return domain.User{}, err
	}

	name := ext.UserMetadata.DisplayName
	if name == "" {
		name = ext.UserMetadata.FullName
	}

	return domain.User{
		ID:          ext.ID,
		Email:       ext.Email,
		DisplayName: name,
		PhotoURL:    ext.UserMetadata.AvatarURL,
		CreatedAt:   ext.CreatedAt.Time,
	}, nil
}

func (a *AuthAdapter) translateSession(ext *sessionRecord) (*domain.Session, error) {
	userRec := ext.User
	if userRec == nil {
		userRec = &ext.userRecord
	}

	user, err := translateUser(userRec)
	if err != nil {
		return nil, domain.NewAuthError(domain.AuthReasonRejected, err)
	}

	session := &domain.Session{
		AccessToken:  ext.AccessToken,
		RefreshToken: ext.RefreshToken,
		User:         user,
	}

	switch {
	case ext.ExpiresAt > 0:
		session.ExpiresAt = time.Unix(ext.ExpiresAt, 0).UTC()
	case ext.ExpiresIn > 0:
		session.ExpiresAt = a.now().Add(time.Duration(ext.ExpiresIn) * time.Second).UTC()
	}

	return session, nil
}

// SignIn exchanges email and password for a session.
func (a *AuthAdapter) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return a.session(ctx, "/auth/v1/token?grant_type=password", map[string]any{
		"email":    email,
		"password": password,
	}, "sign in")
}

// SignUp registers a user. When the backend requires email confirmation the
// returned session has no access token yet.
func (a *AuthAdapter) SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error) {
	return a.session(ctx, "/auth/v1/signup", map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"display_name": displayName},
	}, "sign up")
}

func (a *AuthAdapter) session(ctx context.Context, path string, payload any, operation string) (*domain.Session, error) {
	body, err := a.Do(ctx, Call{
		Method:   http.MethodPost,
		Path:     path,
		Body:     payload,
		Target:   Target{Operation: operation, Entity: "session"},
		MapError: MapAuthError,
	})
	if err != nil {
		return nil, err
	}

	rec, err := DecodeResponse[sessionRecord](body)
	if err != nil {
		return nil, domain.NewAuthError(domain.AuthReasonNetwork, err)
	}

	return a.translateSession(rec)
}

// SignOut revokes the session carried by ctx.
func (a *AuthAdapter) SignOut(ctx context.Context) error {
	if ports.SessionTokenFromContext(ctx) == nil {
		return domain.NewNotAuthenticatedError("sign out")
	}

	body, err := a.Do(ctx, Call{
		Method:   http.MethodPost,
		Path:     "/auth/v1/logout",
		Target:   Target{Operation: "sign out", Entity: "session"},
		MapError: MapAuthError,
	})
	if err != nil {
		return err
	}

	Discard(body)

	return nil
}

// ResetPassword asks the backend to email a recovery link.
func (a *AuthAdapter) ResetPassword(ctx context.Context, email string) error {
	body, err := a.Do(ctx, Call{
		Method:   http.MethodPost,
		Path:     "/auth/v1/recover",
		Body:     map[string]string{"email": email},
		Target:   Target{Operation: "reset password", Entity: "user"},
		MapError: MapAuthError,
	})
	if err != nil {
		return err
	}

	Discard(body)

	return nil
}

// CurrentUser resolves the session carried by ctx.
func (a *AuthAdapter) CurrentUser(ctx context.Context) (*domain.User, error) {
	if ports.SessionTokenFromContext(ctx) == nil {
		return nil, domain.NewNotAuthenticatedError("current user")
	}

	body, err := a.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   "/auth/v1/user",
		Target: Target{Operation: "current user", Entity: "user"},
		MapError: func(resp *http.Response, clientErr error, serviceName string, target Target) error {
			if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
				return domain.NewNotAuthenticatedError(target.Operation)
			}

			return MapHTTPError(resp, clientErr, serviceName, target)
		},
	})
	if err != nil {
		return nil, err
	}

	rec, err := DecodeResponseForService[userRecord](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	user, err := translateUser(rec)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	return &user, nil
}

type favoriteRecord struct {
	UserID    string    `json:"user_id"`
	QuoteID   string    `json:"quote_id"`
	CreatedAt Timestamp `json:"created_at,omitzero"`
}

// AddFavorite upserts the pair, ignoring duplicates.
func (a *AuthAdapter) AddFavorite(ctx context.Context, userID, quoteID string) error {
	header := http.Header{}
	header.Set("Prefer", "resolution=ignore-duplicates,return=minimal")
	header.Set(clients.HeaderIdempotencyKey, "favorite:"+userID+":"+quoteID)

	query := url.Values{}
	query.Set("on_conflict", "user_id,quote_id")

	body, err := a.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   favoritesPath + "?" + query.Encode(),
		Body:   favoriteRecord{UserID: userID, QuoteID: quoteID},
		Header: header,
		Target: Target{Operation: "add favorite", Entity: "quote", ID: quoteID},
	})
	if err != nil {
		return a.writeFailure(err)
	}

	Discard(body)

	return nil
}

// RemoveFavorite deletes the pair. Deleting a missing pair succeeds.
func (a *AuthAdapter) RemoveFavorite(ctx context.Context, userID, quoteID string) error {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("quote_id", "eq."+quoteID)

	body, err := a.Do(ctx, Call{
		Method: http.MethodDelete,
		Path:   favoritesPath + "?" + query.Encode(),
		Target: Target{Operation: "remove favorite", Entity: "favorite", ID: quoteID},
	})
	if err != nil {
		return a.writeFailure(err)
	}

	Discard(body)

	return nil
}

// writeFailure keeps not-found and validation answers, which mean the caller
// asked for something impossible, and reports everything else as unavailable.
func (a *AuthAdapter) writeFailure(err error) error {
	if domain.IsNotFound(err) || domain.IsValidation(err) || domain.IsUnavailable(err) {
		return err
	}

	return domain.NewUnavailableError(a.ServiceName(), err.Error())
}

// FavoriteIDs fetches the user's favorite quote ids, most recent first.
func (a *AuthAdapter) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	query := url.Values{}
	query.Set("select", "quote_id,created_at")
	query.Set("user_id", "eq."+userID)
	query.Set("order", "created_at.desc,quote_id.asc")

	body, err := a.Get(ctx, favoritesPath+"?"+query.Encode(), Target{Operation: "fetch favorites", Entity: "favorite"})
	if err != nil {
		return nil, err
	}

	records, err := DecodeResponseForService[[]favoriteRecord](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(*records))
	for _, r := range *records {
		ids = append(ids, r.QuoteID)
	}

	return ids, nil
}

// SubscribeFavoriteIDs polls the remote favorite set and sends it whenever
// its membership changes. The first set is sent as soon as it is read. Poll
// failures are logged and retried on the next tick; the channel closes when
// ctx ends.
func (a *AuthAdapter) SubscribeFavoriteIDs(ctx context.Context, userID string) (<-chan []string, error) {
	initial, err := a.FavoriteIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make(chan []string, 1)
	out <- initial

	go func() {
		defer close(out)

		logger := logging.FromContext(ctx).With(slog.String("user_id", userID))
		last := initial

		ticker := time.NewTicker(a.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			next, err := a.FavoriteIDs(ctx, userID)
			if err != nil {
				if errors.Is(err, context.Canceled) || ctx.Err() != nil {
					return
				}

				logger.WarnContext(ctx, "polling remote favorites", slog.Any("error", err))

				continue
			}

			if domain.SameFavoriteSet(last, next) {
				continue
			}

			last = next

			select {
			case <-out:
			default:
			}

			out <- next
		}
	}()

	return out, nil
}

type collectionRecord struct {
	ID            string    `json:"id,omitempty"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	QuoteIDs      []string  `json:"quote_ids"`
	IsPublic      bool      `json:"is_public"`
	CoverImageURL *string   `json:"cover_image_url"`
	CreatedAt     Timestamp `json:"created_at,omitzero"`
}

func translateCollection(ext *collectionRecord) (domain.Collection, error) {
	if err := ValidateRequired(ext.ID, "id"); err != nil {
		return domain.Collection{}, err
	}

	c := domain.Collection{
		ID:          ext.ID,
		Name:        ext.Name,
		Description: ext.Description,
		UserID:      ext.UserID,
		QuoteIDs:    ext.QuoteIDs,
		IsPublic:    ext.IsPublic,
		CreatedAt:   ext.CreatedAt.Time,
	}

	if c.QuoteIDs == nil {
		c.QuoteIDs = []string{}
	}

	if ext.CoverImageURL != nil {
		c.CoverImageURL = *ext.CoverImageURL
	}

	return c, nil
}

// CreateCollection stores a new collection and returns it with its remote id.
func (a *AuthAdapter) CreateCollection(ctx context.Context, collection domain.Collection) (domain.Collection, error) {
	rec := collectionRecord{
		UserID:      collection.UserID,
		Name:        collection.Name,
		Description: collection.Description,
		QuoteIDs:    collection.QuoteIDs,
		IsPublic:    collection.IsPublic,
	}

	if rec.QuoteIDs == nil {
		rec.QuoteIDs = []string{}
	}

	if collection.CoverImageURL != "" {
		rec.CoverImageURL = &collection.CoverImageURL
	}

	header := http.Header{}
	header.Set("Prefer", "return=representation")

	created, err := a.collections(ctx, Call{
		Method: http.MethodPost,
		Path:   collectionsPath,
		Body:   rec,
		Header: header,
		Target: Target{Operation: "create collection", Entity: "collection"},
	})
	if err != nil {
		return domain.Collection{}, a.writeFailure(err)
	}

	if len(created) == 0 {
		return domain.Collection{}, domain.NewUnavailableError(a.ServiceName(), "create collection returned no row")
	}

	return created[0], nil
}

// SetCollectionQuotes replaces the quote ids of a collection owned by userID.
func (a *AuthAdapter) SetCollectionQuotes(ctx context.Context, userID, collectionID string, quoteIDs []string) error {
	if quoteIDs == nil {
		quoteIDs = []string{}
	}

	query := url.Values{}
	query.Set("id", "eq."+collectionID)
	query.Set("user_id", "eq."+userID)

	header := http.Header{}
	header.Set("Prefer", "return=representation")
	header.Set(clients.HeaderIdempotencyKey, "collection:"+collectionID)

	updated, err := a.collections(ctx, Call{
		Method: http.MethodPatch,
		Path:   collectionsPath + "?" + query.Encode(),
		Body:   map[string][]string{"quote_ids": quoteIDs},
		Header: header,
		Target: Target{Operation: "update collection", Entity: "collection", ID: collectionID},
	})
	if err != nil {
		return a.writeFailure(err)
	}

	if len(updated) == 0 {
		return domain.NewNotFoundError("collection", collectionID)
	}

	return nil
}

// Collections lists the user's collections, newest first.
func (a *AuthAdapter) Collections(ctx context.Context, userID string) ([]domain.Collection, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_id", "eq."+userID)
	query.Set("order", "created_at.desc,id.desc")

	return a.collections(ctx, Call{
		Method: http.MethodGet,
		Path:   collectionsPath + "?" + query.Encode(),
		Target: Target{Operation: "fetch collections", Entity: "collection"},
	})
}

func (a *AuthAdapter) collections(ctx context.Context, call Call) ([]domain.Collection, error) {
	body, err := a.Do(ctx, call)
	if err != nil {
		return nil, err
	}

	records, err := DecodeResponseForService[[]collectionRecord](body, a.ServiceName())
	if err != nil {
		return nil, err
	}

	collections, err := TranslateSlice(*records, translateCollection)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	return slices.Clip(collections), nil
}
