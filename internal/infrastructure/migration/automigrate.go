package migration

import (
	"fmt"

	"gorm.io/gorm"

	"jstore/internal/infrastructure/persistence/models"
	"jstore/internal/shared/logger"
)

// AutoMigrateModels lists the models managed by GORM auto-migration in
// development.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.OrderModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema from struct definitions.
// Development only; versioned SQL scripts are authoritative elsewhere.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
