package app

import (
	"context"
	"strings"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// CreateCollection stores a new collection owned by the signed-in user.
func (r *QuoteRepository) CreateCollection(ctx context.Context, collection domain.Collection) (domain.Collection, error) {
	user, err := r.requireUser(ctx, "create_collection")
	if err != nil {
		return domain.Collection{}, err
	}

	collection.ID = ""
	collection.UserID = user.ID
	collection.Name = strings.TrimSpace(collection.Name)
	collection.Description = strings.TrimSpace(collection.Description)

	created, err := Execute(ctx, r.exec, Operation[domain.Collection, domain.Collection, domain.Collection]{
		Name: "create_collection",
		Validate: func(_ context.Context, c domain.Collection) error {
			return c.Validate()
		},
		Perform: r.collections.CreateCollection,
		Verify: func(_ context.Context, _ domain.Collection, c domain.Collection) (domain.Collection, error) {
			if c.ID == "" {
				return domain.Collection{}, domain.NewUnavailableError("remote", "created collection has no id")
			}

			return c, nil
		},
		Archive: func(ctx context.Context, _ domain.Collection, c domain.Collection) error {
			return r.collectionCache.UpsertCollections(ctx, []domain.Collection{c})
		},
	}, collection)

	return created, classify(err)
}

type collectionEdit struct {
	userID       string
	collectionID string
	quoteID      string
}

// AddToCollection appends quoteID to a collection of the signed-in user.
// Adding a quote already in the collection changes nothing.
func (r *QuoteRepository) AddToCollection(ctx context.Context, collectionID, quoteID string) (domain.Collection, error) {
	return r.editCollection(ctx, "add_to_collection", collectionID, quoteID, domain.Collection.WithQuote)
}

// RemoveFromCollection drops quoteID from a collection of the signed-in user.
func (r *QuoteRepository) RemoveFromCollection(
	ctx context.Context,
	collectionID, quoteID string,
) (domain.Collection, error) {
	return r.editCollection(ctx, "remove_from_collection", collectionID, quoteID, domain.Collection.WithoutQuote)
}

// editCollection reads the collection from the remote, applies edit and
// writes the resulting quote list back. Concurrent edits of one collection
// are last-write-wins.
func (r *QuoteRepository) editCollection(
	ctx context.Context,
	name, collectionID, quoteID string,
	edit func(domain.Collection, string) domain.Collection,
) (domain.Collection, error) {
	user, err := r.requireUser(ctx, name)
	if err != nil {
		return domain.Collection{}, err
	}

	input := collectionEdit{
		userID:       user.ID,
		collectionID: strings.TrimSpace(collectionID),
		quoteID:      strings.TrimSpace(quoteID),
	}

	edited, err := Execute(ctx, r.exec, Operation[collectionEdit, domain.Collection, domain.Collection]{
		Name: name,
		Validate: func(_ context.Context, in collectionEdit) error {
			if in.collectionID == "" {
				return domain.NewValidationError("collection_id", "must not be empty")
			}

			if in.quoteID == "" {
				return domain.NewValidationError("quote_id", "must not be empty")
			}

			return nil
		},
		Perform: func(ctx context.Context, in collectionEdit) (domain.Collection, error) {
			current, err := r.remoteCollection(ctx, in.userID, in.collectionID)
			if err != nil {
				return domain.Collection{}, err
			}

			next := edit(current, in.quoteID)
			if err := r.collections.SetCollectionQuotes(ctx, in.userID, in.collectionID, next.QuoteIDs); err != nil {
				return domain.Collection{}, err
			}

			return next, nil
		},
		Archive: func(ctx context.Context, _ collectionEdit, c domain.Collection) error {
			return r.collectionCache.UpsertCollections(ctx, []domain.Collection{c})
		},
	}, input)

	return edited, classify(err)
}

func (r *QuoteRepository) remoteCollection(ctx context.Context, userID, collectionID string) (domain.Collection, error) {
	collections, err := r.collections.Collections(ctx, userID)
	if err != nil {
		return domain.Collection{}, err
	}

	for _, c := range collections {
		if c.ID == collectionID {
			return c, nil
		}
	}

	return domain.Collection{}, domain.NewNotFoundError("collection", collectionID)
}

// GetUserCollections lists the signed-in user's collections, falling back to
// the cache when the remote is unreachable.
func (r *QuoteRepository) GetUserCollections(ctx context.Context) ([]domain.Collection, error) {
	user, err := r.requireUser(ctx, "get_collections")
	if err != nil {
		return nil, err
	}

	collections, err := readThrough(ctx, r, readPath[[]domain.Collection]{
		name: "get_collections",
		remote: func(ctx context.Context) ([]domain.Collection, error) {
			return r.collections.Collections(ctx, user.ID)
		},
		mirror: func(ctx context.Context, cs []domain.Collection) error {
			if len(cs) == 0 {
				return nil
			}

			return r.collectionCache.UpsertCollections(ctx, cs)
		},
		local: func(ctx context.Context) ([]domain.Collection, error) {
			return r.collectionCache.UserCollections(ctx, user.ID)
		},
	})

	return collections, classify(err)
}
