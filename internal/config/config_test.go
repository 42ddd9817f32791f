package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USERNAME", "DB_PASSWORD", "DB_SSL_MODE_DISABLE", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Porta)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, uint(5432), cfg.DBPorta)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigens)
	assert.ErrorIs(t, cfg.Validar(), ErrCredenciaisAusentes)
}

func TestLoadFromDotEnv(t *testing.T) {
	for _, k := range []string{"DB_USERNAME", "DB_PASSWORD", "DB_HOST", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_USERNAME=postgres\nDB_PASSWORD=segredo\nDB_HOST=db.example.com\nCORS_ALLOWED_ORIGINS=http://a.com,http://b.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.NoError(t, cfg.Validar())
	assert.Equal(t, "db.example.com", cfg.DBHost)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.CORSOrigens)
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "h", DBUsuario: "u", DBSenha: "p", DBNome: "n", DBPorta: 6543}
	assert.Equal(t, "host=h user=u password=p dbname=n port=6543", cfg.DSN())

	cfg.DBSSLModeDisable = true
	assert.Equal(t, "host=h user=u password=p dbname=n port=6543 sslmode=disable", cfg.DSN())
}

func TestEndereco(t *testing.T) {
	assert.Equal(t, ":8080", Config{Porta: 8080}.Endereco())
}
