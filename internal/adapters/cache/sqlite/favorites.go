package sqlite

import (
	"context"
	"fmt"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func favoritesTopic(userID string) string {
	return "favorites/" + userID
}

// UpsertFavorite records the pair. Re-adding keeps the original added time.
func (s *Store) UpsertFavorite(ctx context.Context, userID, quoteID string) error {
	row := favoriteRow{UserID: userID, QuoteID: quoteID, AddedAt: time.Now().UTC()}

	if err := s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return fmt.Errorf("caching favorite %s: %w", quoteID, err)
	}

	s.hub.publish(favoritesTopic(userID))

	return nil
}

// RemoveFavorite deletes the pair. Removing an absent pair is not an error.
func (s *Store) RemoveFavorite(ctx context.Context, userID, quoteID string) error {
	err := s.conn(ctx).
		Where("user_id = ? AND quote_id = ?", userID, quoteID).
		Delete(&favoriteRow{}).Error
	if err != nil {
		return fmt.Errorf("removing cached favorite %s: %w", quoteID, err)
	}

	s.hub.publish(favoritesTopic(userID))

	return nil
}

// FavoriteIDs returns the user's favorite quote ids, most recently added first.
func (s *Store) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}

	err := s.conn(ctx).Model(&favoriteRow{}).
		Where("user_id = ?", userID).
		Order("added_at DESC, quote_id").
		Pluck("quote_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("listing cached favorites: %w", err)
	}

	return ids, nil
}

// ReplaceFavorites makes the user's cached favorite set equal to quoteIDs.
// Pairs already present keep their added time.
func (s *Store) ReplaceFavorites(ctx context.Context, userID string, quoteIDs []string) error {
	now := time.Now().UTC()

	ids := slices.Compact(slices.Sorted(slices.Values(quoteIDs)))

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Where("user_id = ?", userID)
		if len(ids) > 0 {
			stale = stale.Where("quote_id NOT IN ?", ids)
		}

		if err := stale.Delete(&favoriteRow{}).Error; err != nil {
			return err
		}

		if len(ids) == 0 {
			return nil
		}

		rows := make([]favoriteRow, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, favoriteRow{UserID: userID, QuoteID: id, AddedAt: now})
		}

		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(&rows, upsertBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("replacing cached favorites: %w", err)
	}

	s.hub.publish(favoritesTopic(userID))

	return nil
}

// WatchFavoriteIDs emits the user's favorite ids now and after every change to them.
func (s *Store) WatchFavoriteIDs(ctx context.Context, userID string) (<-chan []string, error) {
	return watch(ctx, s.hub, favoritesTopic(userID), func(ctx context.Context) ([]string, error) {
		return s.FavoriteIDs(ctx, userID)
	}, slices.Equal[[]string])
}
