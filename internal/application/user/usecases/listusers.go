package usecases

import (
	"context"
	"time"

	"tlogi/internal/domain/user"
	"tlogi/internal/shared/logger"
)

type ListUsersCommand struct{}

type UserView struct {
	DiscordID    string    `json:"discord_id"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar"`
	Role         string    `json:"role"`
	IsSuperAdmin bool      `json:"is_super_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListUsersResult struct {
	Users []UserView `json:"users"`
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error)
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

// Execute lists every known user with their access role. Users without a
// grant report the "none" role.
func (uc *ListUsersUseCase) Execute(ctx context.Context, cmd ListUsersCommand) (*ListUsersResult, error) {
	rows, err := uc.userRepo.ListWithGrants(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	views := make([]UserView, 0, len(rows))
	for _, row := range rows {
		v := UserView{
			DiscordID: row.User.DiscordID(),
			Username:  row.User.Username(),
			Avatar:    row.User.Avatar(),
			Role:      string(user.AccessNone),
			CreatedAt: row.User.CreatedAt(),
		}
		if row.Grant != nil {
			v.Role = string(row.Grant.Role())
			v.IsSuperAdmin = row.Grant.IsSuperAdmin()
		}
		views = append(views, v)
	}

	return &ListUsersResult{Users: views}, nil
}
