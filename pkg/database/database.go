package database

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/testigo-app/testigo-api/config"
)

// InitDB 打开 PostgreSQL 连接
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
}

// Store owns the database handle. Availability is a property of the
// handle, answered per request, not a flag set once at startup: a
// repository that comes back after a failed boot is picked up on the
// next health check.
type Store struct {
	db *gorm.DB
}

// NewStore wraps db; db may be nil when the startup connection failed,
// in which case the store reports unhealthy until the process restarts.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB 返回底层 gorm 句柄（可能为 nil）
func (s *Store) DB() *gorm.DB { return s.db }

// Healthy pings the database with a bounded deadline.
func (s *Store) Healthy(ctx context.Context) bool {
	if s == nil || s.db == nil {
		return false
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
