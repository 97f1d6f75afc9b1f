// internal/model/migrate.go
package model

import "gorm.io/gorm"

// AutoMigrate creates or updates the full schema. Order matters only for
// readability; gorm resolves the indexes either way.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Organisation{},
		&User{},
		&Employee{},
		&Team{},
		&EmployeeTeam{},
		&Log{},
	)
}
