package main

import (
	"medops/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.UserRoleModel{},
		model.CareRelationshipModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.DeviceModel{},
		model.DeviceAssignmentModel{},
		model.VitalReadingModel{},
		model.UserDeviceModel{},
		model.NotificationModel{},
		model.NotificationLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
