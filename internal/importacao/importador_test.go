package importacao

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/KromaEnergia/consultores-cvm/internal/consultor"
	"github.com/KromaEnergia/consultores-cvm/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"gorm.io/gorm"
)

func escreverCSVLatin1(t *testing.T, conteudo string) string {
	t.Helper()
	enc, err := charmap.ISO8859_1.NewEncoder().String(conteudo)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cad_consultor_vlmob_pf.csv")
	require.NoError(t, os.WriteFile(path, []byte(enc), 0644))
	return path
}

func novoImportadorTeste(db *gorm.DB, entrada string) (*Importador, *bytes.Buffer) {
	var saida bytes.Buffer
	imp := NewImportador(db, strings.NewReader(entrada), &saida)
	imp.agora = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	return imp, &saida
}

func contar(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&consultor.Consultor{}).Count(&n).Error)
	return n
}

func TestExecutarTabelaVazia(t *testing.T) {
	db := testdb.Abrir(t, &consultor.Consultor{})
	path := escreverCSVLatin1(t, csvExemplo)
	imp, saida := novoImportadorTeste(db, "")

	require.NoError(t, imp.Executar(context.Background(), path, false))

	assert.Equal(t, int64(2), contar(t, db))
	assert.Contains(t, saida.String(), "Consultores ativos encontrados: 2")
	assert.Contains(t, saida.String(), "Lote 1: 2 registros inseridos")
	assert.Contains(t, saida.String(), "Importação concluída com sucesso!")
}

func TestExecutarTabelaInexistente(t *testing.T) {
	db := testdb.Abrir(t)
	imp, saida := novoImportadorTeste(db, "")

	require.NoError(t, imp.Executar(context.Background(), "nao-importa.csv", false))
	assert.Contains(t, saida.String(), "CREATE TABLE IF NOT EXISTS consultores_pf")
	assert.Contains(t, saida.String(), "execute este comando novamente")
}

func TestExecutarCancelado(t *testing.T) {
	db := testdb.Abrir(t, &consultor.Consultor{})
	require.NoError(t, consultor.NewRepository().InserirLote(db, []consultor.Consultor{{Nome: "EXISTENTE"}}))
	path := escreverCSVLatin1(t, csvExemplo)
	imp, saida := novoImportadorTeste(db, "n\n")

	require.NoError(t, imp.Executar(context.Background(), path, false))
	assert.Equal(t, int64(1), contar(t, db))
	assert.Contains(t, saida.String(), "A tabela já contém 1 registros.")
	assert.Contains(t, saida.String(), "Operação cancelada.")
}

func TestExecutarReimporta(t *testing.T) {
	for _, tc := range []struct {
		nome       string
		entrada    string
		confirmado bool
	}{
		{"resposta s", "S\n", false},
		{"flag", "", true},
	} {
		t.Run(tc.nome, func(t *testing.T) {
			db := testdb.Abrir(t, &consultor.Consultor{})
			require.NoError(t, consultor.NewRepository().InserirLote(db, []consultor.Consultor{{Nome: "EXISTENTE"}}))
			path := escreverCSVLatin1(t, csvExemplo)
			imp, saida := novoImportadorTeste(db, tc.entrada)

			require.NoError(t, imp.Executar(context.Background(), path, tc.confirmado))
			assert.Equal(t, int64(2), contar(t, db))
			assert.Contains(t, saida.String(), "Tabela limpa.")

			var nomes []string
			require.NoError(t, db.Model(&consultor.Consultor{}).Order("nome").Pluck("nome", &nomes).Error)
			assert.Equal(t, []string{"ANA SEM SITE", "JOÃO DA CONCEIÇÃO"}, nomes)
		})
	}
}

func TestInserirEmLotes(t *testing.T) {
	db := testdb.Abrir(t, &consultor.Consultor{})
	imp, saida := novoImportadorTeste(db, "")
	imp.TamanhoLote = 2

	consultores := make([]consultor.Consultor, 5)
	for i := range consultores {
		consultores[i] = consultor.Consultor{Nome: string(rune('A' + i))}
	}

	require.NoError(t, imp.Inserir(context.Background(), consultores))
	assert.Equal(t, int64(5), contar(t, db))
	assert.Contains(t, saida.String(), "Lote 3: 1 registros inseridos")
	assert.Contains(t, saida.String(), "Total inserido: 5 consultores")
}

func TestExecutarArquivoInexistente(t *testing.T) {
	db := testdb.Abrir(t, &consultor.Consultor{})
	imp, _ := novoImportadorTeste(db, "")

	err := imp.Executar(context.Background(), filepath.Join(t.TempDir(), "falta.csv"), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExecutarFalhaNaLeituraPreservaTabela(t *testing.T) {
	for _, tc := range []struct {
		nome    string
		caminho func(t *testing.T) string
	}{
		{"arquivo inexistente", func(t *testing.T) string { return filepath.Join(t.TempDir(), "typo.csv") }},
		{"cabeçalho sem SIT", func(t *testing.T) string { return escreverCSVLatin1(t, "NOME;DT_REG\nX;2000-01-01\n") }},
	} {
		t.Run(tc.nome, func(t *testing.T) {
			db := testdb.Abrir(t, &consultor.Consultor{})
			obs := "retornar em março"
			require.NoError(t, consultor.NewRepository().InserirLote(db, []consultor.Consultor{
				{Nome: "ANOTADO", Potencial: consultor.PotencialSim, Observacoes: &obs},
			}))
			imp, saida := novoImportadorTeste(db, "s\n")

			err := imp.Executar(context.Background(), tc.caminho(t), false)
			require.Error(t, err)

			assert.Equal(t, int64(1), contar(t, db))
			assert.NotContains(t, saida.String(), "Tabela limpa.")

			var c consultor.Consultor
			require.NoError(t, db.First(&c).Error)
			assert.Equal(t, consultor.PotencialSim, c.Potencial)
			require.NotNil(t, c.Observacoes)
			assert.Equal(t, obs, *c.Observacoes)
		})
	}
}
