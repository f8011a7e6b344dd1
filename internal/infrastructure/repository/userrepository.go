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

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Upsert(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "discord_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "avatar"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByDiscordID(ctx context.Context, discordID string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("discord_id = ?", discordID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByDiscordIDs(ctx context.Context, discordIDs []string) (map[string]*user.User, error) {
	result := make(map[string]*user.User, len(discordIDs))
	if len(discordIDs) == 0 {
		return result, nil
	}

	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("discord_id IN ?", discordIDs).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[u.DiscordID()] = u
	}

	return result, nil
}

func (r *UserRepository) ListWithGrants(ctx context.Context) ([]*user.UserWithGrant, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var users []models.UserModel
	if err := tx.
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var grants []models.StaffUserModel
	if err := tx.Find(&grants).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff grants: %w", err)
	}

	grantsByID := make(map[string]*models.StaffUserModel, len(grants))
	for i := range grants {
		grantsByID[grants[i].DiscordID] = &grants[i]
	}

	rows := make([]*user.UserWithGrant, 0, len(users))
	for i := range users {
		u, err := r.mapper.ToDomain(&users[i])
		if err != nil {
			return nil, err
		}
		row := &user.UserWithGrant{User: u}
		if gm, ok := grantsByID[u.DiscordID()]; ok {
			g, err := r.mapper.GrantToDomain(gm)
			if err != nil {
				return nil, err
			}
			row.Grant = g
		}
		rows = append(rows, row)
	}

	return rows, nil
}
