// Package testdb abre bancos SQLite em memória para os testes.
package testdb

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Abrir devolve um *gorm.DB isolado por teste, já migrado com os modelos informados.
func Abrir(t *testing.T, modelos ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("obter sql.DB: %v", err)
	}
	// cada conexão nova em :memory: é um banco vazio
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if len(modelos) > 0 {
		if err := db.AutoMigrate(modelos...); err != nil {
			t.Fatalf("migrar modelos: %v", err)
		}
	}
	return db
}
