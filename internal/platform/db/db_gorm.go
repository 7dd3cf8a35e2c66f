// Package db opens the relational store and creates the schema.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"game_backend/internal/config"
	authadapters "game_backend/internal/feature/auth/adapters"
	authentity "game_backend/internal/feature/auth/domain/entity"
	savesadapters "game_backend/internal/feature/saves/adapters"
)

// OpenDB connects to the storage engine selected by the configuration:
// Postgres when POSTGRES_URL is set, otherwise an embedded SQLite file.
// Tables are created if absent.
func OpenDB(cfg config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.PostgresURL != "" {
		// Networked store: retry while the database comes up.
		deadline := time.Now().Add(60 * time.Second)
		for {
			db, err = gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{TranslateError: true})
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
			}
			log.Printf("DB connect failed, retrying...: %v", err)
			time.Sleep(3 * time.Second)
		}
	} else {
		// SQLite ships with foreign keys off; without the pragma the
		// ON DELETE CASCADE from users to game_saves never fires.
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.SQLitePath)
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&savesadapters.GameSaveModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return db, nil
}
