package store

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// GormStore persists records in PostgreSQL.
type GormStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormStore(dsn string, logger *slog.Logger) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&types.Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}
	return &GormStore{
		db:     db,
		logger: logger.With("component", "record-store"),
	}, nil
}

func (s *GormStore) FetchUnresolved(ctx context.Context, limit int) ([]types.Record, error) {
	var records []types.Record
	err := s.db.WithContext(ctx).
		Where("display_name = ? OR rules_version < ?", "", types.RulesVersion).
		Order("id").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unresolved records: %w", err)
	}
	return records, nil
}

func (s *GormStore) Save(ctx context.Context, records []types.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Save(&records).Error; err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

func (s *GormStore) CountUnresolved(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&types.Record{}).
		Where("display_name = ? OR rules_version < ?", "", types.RulesVersion).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unresolved records: %w", err)
	}
	return count, nil
}
