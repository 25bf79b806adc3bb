// Package persistence implements the local store on client-side SQLite.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/client/internal/application/adapter"
)

// kvRecord is the persistence model for one store key.
type kvRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

// TableName returns the table name for KV records.
func (kvRecord) TableName() string {
	return "kv_records"
}

// SQLiteStore is the durable local store, a single-table key/value layout on
// SQLite. Values are UTF-8 JSON.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (or creates) the store at the given path and ensures
// its schema exists. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("failed to prepare local store schema: %w", err)
	}

	slog.Info("Local store opened", "path", path)
	return &SQLiteStore{db: db}, nil
}

// Get retrieves the value stored under key.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var record kvRecord
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return []byte(record.Value), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	record := kvRecord{Key: key, Value: string(value)}
	return s.db.WithContext(ctx).Save(&record).Error
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&kvRecord{}).Error
}

// Keys lists every key currently present in the store.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.db.WithContext(ctx).Model(&kvRecord{}).Order("key").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// HealthCheck reports whether the store is reachable.
func (s *SQLiteStore) HealthCheck() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ adapter.KVStore = (*SQLiteStore)(nil)
