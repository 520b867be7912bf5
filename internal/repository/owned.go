package repository

import (
	"context"

	"gorm.io/gorm"
)

// FindOwned loads the row of type T with the given id that belongs to userID.
// Rows owned by someone else are reported as gorm.ErrRecordNotFound.
func FindOwned[T any](ctx context.Context, db *gorm.DB, id, userID string) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// updateOwned applies updates to the row of model's table with the given id and owner.
// Returns gorm.ErrRecordNotFound when no row matched.
func updateOwned(ctx context.Context, db *gorm.DB, model interface{}, id, userID string, updates map[string]interface{}) error {
	result := db.WithContext(ctx).Model(model).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteOwned removes the row of model's table with the given id and owner.
// Returns gorm.ErrRecordNotFound when no row matched.
func deleteOwned(ctx context.Context, db *gorm.DB, model interface{}, id, userID string) error {
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
