package consultor

import (
	"testing"
	"time"

	"github.com/KromaEnergia/consultores-cvm/internal/testdb"
	"gorm.io/gorm"
)

func str(s string) *string { return &s }

func novoServiceTeste(t *testing.T) *Service {
	t.Helper()

	db := testdb.Abrir(t, &Consultor{})
	s := NewService(db)
	relogio := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.agora = func() time.Time {
		relogio = relogio.Add(time.Second)
		return relogio
	}
	return s
}

// semear grava os consultores de exemplo usados em vários testes.
func semear(t *testing.T, db *gorm.DB) []Consultor {
	t.Helper()

	normal := str("EM FUNCIONAMENTO NORMAL")
	cancelado := str("CANCELADO")
	consultores := []Consultor{
		{Nome: "Maria Silva", DtReg: str("2010-05-03"), Situacao: normal, SiteAdmin: str("maria.com.br"), Pesquisado: true, Potencial: PotencialSim, Observacoes: str("ligar segunda")},
		{Nome: "SILVA EMPREENDIMENTOS", DtReg: str("2015-01-20"), Situacao: normal},
		{Nome: "Souza", DtReg: str("2018-07-11"), Situacao: cancelado, Pesquisado: true, Potencial: PotencialNao},
		{Nome: "Ana Costa", DtReg: str("2020-02-02"), Situacao: normal, Potencial: PotencialSim},
		{Nome: "Bruno 50% Lima", DtReg: str("2021-09-09"), Situacao: normal},
	}
	if err := NewRepository().InserirLote(db, consultores); err != nil {
		t.Fatalf("semear consultores: %v", err)
	}
	return consultores
}

func nomes(cs []Consultor) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Nome)
	}
	return out
}
