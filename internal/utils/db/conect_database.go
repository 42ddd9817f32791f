package db

import (
	"fmt"

	"github.com/KromaEnergia/consultores-cvm/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDataBase abre a conexão com o postgres gerenciado usando as credenciais da Config.
func ConnectDataBase(cfg config.Config) (*gorm.DB, error) {
	if err := cfg.Validar(); err != nil {
		return nil, err
	}

	database, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("conectar no banco: %w", err)
	}

	return database, nil
}
