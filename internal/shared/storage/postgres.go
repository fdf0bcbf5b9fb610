package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"seatwise/internal/shared/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Document is a single named JSON document row
type Document struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName sets the table name for Document
func (Document) TableName() string {
	return "documents"
}

// postgresStore keeps documents in a single key/jsonb table
type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to postgres with GORM and migrates the documents table
func NewPostgresStore(cfg *config.Config) (DocumentStore, error) {
	var gormLogger logger.Interface
	if cfg.IsDevelopment() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}

	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Get(ctx context.Context, key string, dest interface{}) error {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load document %s: %w", key, err)
	}

	if err := json.Unmarshal(doc.Payload, dest); err != nil {
		return fmt.Errorf("document %s: %w: %v", key, ErrCorrupt, err)
	}

	return nil
}

func (s *postgresStore) Put(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}

	doc := Document{Key: key, Payload: data, UpdatedAt: time.Now().UTC()}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("store document %s: %w", key, err)
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *postgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
