package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// AuthSource is the remote identity provider together with the remote
// favorites store it guards. Credential flows fail with domain.AuthError;
// favorite writes fail with domain.ErrUnavailable.
type AuthSource interface {
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error)

	// SignOut revokes the session carried by ctx.
	SignOut(ctx context.Context) error

	ResetPassword(ctx context.Context, email string) error

	// CurrentUser resolves the session carried by ctx. It returns
	// domain.ErrNotAuthenticated when there is no valid session.
	CurrentUser(ctx context.Context) (*domain.User, error)

	// AddFavorite is idempotent on the remote side.
	AddFavorite(ctx context.Context, userID, quoteID string) error
	RemoveFavorite(ctx context.Context, userID, quoteID string) error

	// FavoriteIDs fetches the user's remote favorite set once.
	FavoriteIDs(ctx context.Context, userID string) ([]string, error)

	// SubscribeFavoriteIDs pushes the remote favorite set whenever it changes.
	// The channel closes when ctx ends.
	SubscribeFavoriteIDs(ctx context.Context, userID string) (<-chan []string, error)
}

// SessionCache remembers which user a session token resolved to, so reads
// scoped to the user keep working while the auth backend is unreachable.
// Keys are digests of the token; the token itself is never stored.
type SessionCache interface {
	RememberSession(ctx context.Context, key string, user domain.User, expiresAt time.Time) error

	// SessionUser returns domain.ErrNotFound for unknown or expired keys.
	SessionUser(ctx context.Context, key string) (domain.User, error)

	// ForgetSession succeeds when the key is absent.
	ForgetSession(ctx context.Context, key string) error
}

// CollectionSource is the remote store of user collections.
type CollectionSource interface {
	CreateCollection(ctx context.Context, collection domain.Collection) (domain.Collection, error)

	// SetCollectionQuotes replaces the ordered quote ids of a collection owned by userID.
	SetCollectionQuotes(ctx context.Context, userID, collectionID string, quoteIDs []string) error

	Collections(ctx context.Context, userID string) ([]domain.Collection, error)
}

// CollectionCache mirrors collections locally.
type CollectionCache interface {
	UpsertCollections(ctx context.Context, collections []domain.Collection) error
	UserCollections(ctx context.Context, userID string) ([]domain.Collection, error)
	Collection(ctx context.Context, userID, collectionID string) (domain.Collection, error)
}

// Notifier hands a quote of the day to whatever delivers it to users.
type Notifier interface {
	NotifyDailyQuote(ctx context.Context, quote domain.Quote) error
}
