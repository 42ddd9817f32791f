package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrCredenciaisAusentes indica que DB_USERNAME ou DB_PASSWORD não foram definidos.
var ErrCredenciaisAusentes = errors.New("credenciais do banco ausentes")

// Config reúne tudo que vem do ambiente. É carregada uma vez na inicialização
// e repassada explicitamente para quem precisa.
type Config struct {
	Porta int `envconfig:"PORT" default:"5001"`

	DBHost           string `envconfig:"DB_HOST" default:"localhost"`
	DBPorta          uint   `envconfig:"DB_PORT" default:"5432"`
	DBNome           string `envconfig:"DB_NAME" default:"postgres"`
	DBUsuario        string `envconfig:"DB_USERNAME"`
	DBSenha          string `envconfig:"DB_PASSWORD"`
	DBSSLModeDisable bool   `envconfig:"DB_SSL_MODE_DISABLE" default:"false"`

	CORSOrigens []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load lê o .env (se existir) e depois as variáveis de ambiente.
func Load(arquivos ...string) (Config, error) {
	if err := godotenv.Load(arquivos...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("ler .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processar variáveis de ambiente: %w", err)
	}
	return cfg, nil
}

// Validar confere se o par de credenciais do banco está presente.
func (c Config) Validar() error {
	if c.DBUsuario == "" || c.DBSenha == "" {
		return ErrCredenciaisAusentes
	}
	return nil
}

// DSN monta a string de conexão do postgres.
func (c Config) DSN() string {
	var sslMode string
	if c.DBSSLModeDisable {
		sslMode = " sslmode=disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		c.DBHost, c.DBUsuario, c.DBSenha, c.DBNome, c.DBPorta, sslMode)
}

// Endereco é o endereço de escuta do servidor HTTP.
func (c Config) Endereco() string {
	return fmt.Sprintf(":%d", c.Porta)
}
