// Package sqlite implémente l'Entity Store sur un fichier SQLite embarqué via
// GORM. Le schéma est synchronisé au démarrage (AutoMigrate : création puis
// altération idempotentes), jamais pendant le traitement d'une requête.
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tdiallo/papistock-api/internal/domain/entity"
)

// DB encapsule gorm.DB et retient le chemin du fichier de base,
// nécessaire à la sauvegarde par copie de fichier.
type DB struct {
	*gorm.DB
	path string
}

// Open ouvre (ou crée) le fichier SQLite et synchronise le schéma.
// TranslateError fait remonter gorm.ErrDuplicatedKey sur les violations
// d'unicité au lieu d'une erreur driver brute.
func Open(path string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("ouvrir la base %s: %w", path, err)
	}

	db := &DB{DB: gdb, path: path}
	if err := db.migrate(); err != nil {
		return nil, err
	}
	return db, nil
}

// migrate synchronise le schéma des sept entités.
func (db *DB) migrate() error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Supplier{},
		&entity.Location{},
		&entity.MaterialType{},
		&entity.Item{},
		&entity.Transaction{},
		&entity.StockMovement{},
	)
	if err != nil {
		return fmt.Errorf("migration du schéma: %w", err)
	}
	return nil
}

// Path renvoie le chemin du fichier de base persisté.
func (db *DB) Path() string { return db.path }

// Close ferme la connexion sous-jacente.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
