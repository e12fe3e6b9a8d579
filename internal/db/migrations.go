package db

import (
	"fmt"

	"gorm.io/gorm"

	"waste-service/internal/model"
)

var migrationModels = []interface{}{
	&model.Vehicle{},
	&model.WastePoint{},
	&model.StartEndPoint{},
}

// Plain DDL accepted by both sqlite and postgres.
var migrationStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_vehicles_plate ON vehicles (plate);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_start_end_points_point_type ON start_end_points (point_type);`,
}

func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(migrationModels...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
