package migration

import (
	"tlogi/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.StaffUserModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
		&models.SettingModel{},
	}
}
