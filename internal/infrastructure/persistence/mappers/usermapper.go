package mappers

import (
	"tlogi/internal/domain/user"
	"tlogi/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)

	GrantToModel(g *user.StaffGrant) *models.StaffUserModel
	GrantToDomain(model *models.StaffUserModel) (*user.StaffGrant, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		DiscordID: u.DiscordID(),
		Username:  u.Username(),
		Avatar:    u.Avatar(),
		CreatedAt: u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.DiscordID,
		model.Username,
		model.Avatar,
		millisToTime(model.CreatedAt),
	)
}

func (m *UserMapperImpl) GrantToModel(g *user.StaffGrant) *models.StaffUserModel {
	return &models.StaffUserModel{
		DiscordID:    g.DiscordID(),
		Role:         string(g.Role()),
		IsSuperAdmin: g.IsSuperAdmin(),
	}
}

func (m *UserMapperImpl) GrantToDomain(model *models.StaffUserModel) (*user.StaffGrant, error) {
	return user.ReconstructStaffGrant(
		model.DiscordID,
		user.AccessLevel(model.Role),
		model.IsSuperAdmin,
	)
}
