// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over an embedded SQLite file. It stores the single
// serialized session record the way the browser original used
// localStorage: one value under one fixed key.
package sqlite

import (
	"context"
	"log/slog"

	"dindigul/config"
	"dindigul/internal/domain/repository"
	"dindigul/internal/errors"
	"dindigul/internal/infra/persistence/memory"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// RecordModel mirrors the 'records' table: a plain key-value pair.
type RecordModel struct {
	Key   string `gorm:"primaryKey;type:varchar(255)"`
	Value []byte `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}

// userRecordStore implements repository.UserRecordStore using GORM.
type userRecordStore struct {
	db *gorm.DB
}

// New opens (or creates) the SQLite file at path and migrates the records
// table. The pure-Go driver keeps the binary free of cgo.
func New(path string, logger *slog.Logger) (repository.UserRecordStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// One tiny table, no multi-statement writes; the implicit
		// per-statement transaction is pure overhead here.
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite store at %s", path)
	}

	if err := db.AutoMigrate(&RecordModel{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate records table")
	}

	logger.Info("SQLite record store ready", slog.String("path", path))

	return &userRecordStore{db: db}, nil
}

// NewFromConfig builds the store the configuration asks for: the SQLite
// file when a path is set, the in-memory store otherwise. Wired by Fx.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (repository.UserRecordStore, error) {
	if cfg.Storage == nil || cfg.Storage.Path == "" {
		logger.Info("No storage path configured, using in-memory record store")

		return memory.NewUserRecordStore(), nil
	}

	return New(cfg.Storage.Path, logger)
}

// Get returns the value stored under key.
func (s *userRecordStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record RecordModel
	err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read record")
	}

	return record.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *userRecordStore) Set(ctx context.Context, key string, value []byte) error {
	record := RecordModel{Key: key, Value: value}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return errors.Wrap(err, "failed to write record")
	}

	return nil
}

// Remove deletes the value under key; absent keys are not an error.
func (s *userRecordStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&RecordModel{}, "key = ?", key).Error; err != nil {
		return errors.Wrap(err, "failed to remove record")
	}

	return nil
}
