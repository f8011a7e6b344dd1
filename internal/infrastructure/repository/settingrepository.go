package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tlogi/internal/infrastructure/persistence/models"
	"tlogi/internal/shared/db"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(gdb *gorm.DB) *SettingRepository {
	return &SettingRepository{db: gdb}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var model models.SettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("key = ?", key).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	return model.Value, nil
}

func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&models.SettingModel{Key: key, Value: value}).Error; err != nil {
		return fmt.Errorf("failed to set setting: %w", err)
	}

	return nil
}

func (r *SettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []models.SettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	result := make(map[string]string, len(rows))
	for _, row := range rows {
		result[row.Key] = row.Value
	}

	return result, nil
}
