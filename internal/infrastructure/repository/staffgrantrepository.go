package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tlogi/internal/domain/user"
	"tlogi/internal/infrastructure/persistence/mappers"
	"tlogi/internal/infrastructure/persistence/models"
	"tlogi/internal/shared/db"
)

type StaffGrantRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewStaffGrantRepository(gdb *gorm.DB) *StaffGrantRepository {
	return &StaffGrantRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *StaffGrantRepository) Upsert(ctx context.Context, g *user.StaffGrant) error {
	model := r.mapper.GrantToModel(g)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "discord_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "is_super_admin"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert staff grant: %w", err)
	}

	return nil
}

func (r *StaffGrantRepository) Delete(ctx context.Context, discordID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Deleting a non-existent grant is not an error.
	if err := tx.
		Where("discord_id = ?", discordID).
		Delete(&models.StaffUserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete staff grant: %w", err)
	}

	return nil
}

func (r *StaffGrantRepository) FindByDiscordID(ctx context.Context, discordID string) (*user.StaffGrant, error) {
	var model models.StaffUserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("discord_id = ?", discordID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find staff grant: %w", err)
	}

	return r.mapper.GrantToDomain(&model)
}

func (r *StaffGrantRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.StaffUserModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count staff grants: %w", err)
	}

	return count, nil
}
