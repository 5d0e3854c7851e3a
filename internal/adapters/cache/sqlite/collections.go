package sqlite

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

// UpsertCollections inserts or replaces collections by id in one transaction.
func (s *Store) UpsertCollections(ctx context.Context, collections []domain.Collection) error {
	if len(collections) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]collectionRow, 0, len(collections))

	for _, c := range collections {
		rows = append(rows, newCollectionRow(c, now))
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).
			CreateInBatches(&rows, upsertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("upserting %d collections: %w", len(rows), err)
	}

	return nil
}

// UserCollections lists a user's cached collections, newest first.
func (s *Store) UserCollections(ctx context.Context, userID string) ([]domain.Collection, error) {
	var rows []collectionRow

	err := s.conn(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing cached collections: %w", err)
	}

	out := make([]domain.Collection, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}

	return out, nil
}

// Collection returns one of the user's cached collections.
func (s *Store) Collection(ctx context.Context, userID, collectionID string) (domain.Collection, error) {
	var row collectionRow

	err := s.conn(ctx).
		Where("id = ? AND user_id = ?", collectionID, userID).
		Take(&row).Error
	if err != nil {
		return domain.Collection{}, notFound(err, "collection", collectionID)
	}

	return row.toDomain(), nil
}
