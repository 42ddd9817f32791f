package consultor

import (
	"strings"
	"testing"

	"github.com/KromaEnergia/consultores-cvm/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestContarSemOrderBy(t *testing.T) {
	db := testdb.Abrir(t, &Consultor{})
	f := CompilarFiltro(ParametrosFiltro{Busca: "silva", Potencial: "sim"})

	contagem := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var n int64
		return consultaContagem(tx, f).Count(&n)
	})
	assert.Contains(t, strings.ToLower(contagem), "count(")
	assert.NotContains(t, strings.ToUpper(contagem), "ORDER BY")
	assert.Equal(t, "nome", f.OrdenarPor)

	listagem := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var cs []Consultor
		return f.Aplicar(tx.Model(&Consultor{})).Find(&cs)
	})
	assert.Contains(t, strings.ToUpper(listagem), "ORDER BY NOME")
}

func TestContarComFiltroOrdenado(t *testing.T) {
	s := novoServiceTeste(t)
	semear(t, s.DB)

	n, err := s.Repository.Contar(s.DB, CompilarFiltro(ParametrosFiltro{Busca: "silva"}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
