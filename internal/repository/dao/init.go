package dao

import "gorm.io/gorm"

// InitTables bootstraps the schema. AutoMigrate is idempotent, so running
// it on every boot is safe.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Organiser{},
		&Event{},
		&Registration{},
	)
}
