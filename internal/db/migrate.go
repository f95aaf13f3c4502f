package db

import (
	"fmt"

	"go_vms/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	models := []interface{}{
		&model.User{},
		&model.VisitorEntry{},
		&model.VisitorCategory{},
		&model.Purpose{},
		&model.IDType{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedMasterData(db); err != nil {
		return fmt.Errorf("failed to seed master data: %w", err)
	}

	logrus.WithField("tables", len(models)).Info("database migration completed")
	return nil
}

// seedMasterData inserts the default lookup rows when the tables are empty.
func seedMasterData(db *gorm.DB) error {
	for _, name := range []string{"Guest", "Vendor", "Contractor", "Interview"} {
		row := model.VisitorCategory{CategoryName: name, Status: "A"}
		if err := db.Where(model.VisitorCategory{CategoryName: name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"Meeting", "Delivery", "Maintenance", "Interview", "Personal"} {
		row := model.Purpose{PurposeName: name, Status: "A"}
		if err := db.Where(model.Purpose{PurposeName: name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"Passport", "Driving License", "National ID", "Employee Badge"} {
		row := model.IDType{IDTypeName: name, Status: "A"}
		if err := db.Where(model.IDType{IDTypeName: name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
