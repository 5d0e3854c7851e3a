package sqlite

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen/quotevault/internal/domain"
)

type sessionRow struct {
	TokenKey    string    `gorm:"primaryKey"`
	UserID      string    `gorm:"not null"`
	Email       string    `gorm:"not null"`
	DisplayName string    `gorm:"not null"`
	PhotoURL    string    `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

func (sessionRow) TableName() string { return "sessions" }

// RememberSession records user under key until expiresAt and drops sessions
// that have already expired.
func (s *Store) RememberSession(ctx context.Context, key string, user domain.User, expiresAt time.Time) error {
	row := sessionRow{
		TokenKey:    key,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		ExpiresAt:   expiresAt.UTC(),
	}

	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expires_at <= ?", time.Now().UTC()).Delete(&sessionRow{}).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("remembering session of user %s: %w", user.ID, err)
	}

	return nil
}

// SessionUser returns the user remembered under key.
func (s *Store) SessionUser(ctx context.Context, key string) (domain.User, error) {
	var row sessionRow

	err := s.conn(ctx).
		Where("token_key = ? AND expires_at > ?", key, time.Now().UTC()).
		Take(&row).Error
	if err != nil {
		return domain.User{}, notFound(err, "session", "")
	}

	return domain.User{
		ID:          row.UserID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		PhotoURL:    row.PhotoURL,
	}, nil
}

// ForgetSession drops the session remembered under key.
func (s *Store) ForgetSession(ctx context.Context, key string) error {
	if err := s.conn(ctx).Where("token_key = ?", key).Delete(&sessionRow{}).Error; err != nil {
		return fmt.Errorf("forgetting session: %w", err)
	}

	return nil
}
