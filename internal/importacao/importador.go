package importacao

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/KromaEnergia/consultores-cvm/internal/consultor"
	"gorm.io/gorm"
)

// SchemaSQL é o DDL a executar no SQL Editor do banco antes da primeira importação.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS consultores_pf (
    id SERIAL PRIMARY KEY,
    nome TEXT NOT NULL,
    dt_reg TEXT,
    situacao TEXT,
    site_admin TEXT,
    pesquisado BOOLEAN DEFAULT FALSE,
    observacoes TEXT,
    potencial TEXT,
    updated_at TIMESTAMP DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_consultores_nome ON consultores_pf(nome);
CREATE INDEX IF NOT EXISTS idx_consultores_situacao ON consultores_pf(situacao);
`

// Importador carrega o CSV da CVM em consultores_pf. Roda sozinho, nunca junto com a API.
type Importador struct {
	DB          *gorm.DB
	Repository  consultor.Repository
	Entrada     io.Reader
	Saida       io.Writer
	TamanhoLote int
	agora       func() time.Time
}

func NewImportador(db *gorm.DB, entrada io.Reader, saida io.Writer) *Importador {
	return &Importador{
		DB:          db,
		Repository:  consultor.NewRepository(),
		Entrada:     entrada,
		Saida:       saida,
		TamanhoLote: consultor.TamanhoLote,
		agora:       time.Now,
	}
}

func (imp *Importador) printf(format string, args ...any) {
	fmt.Fprintf(imp.Saida, format, args...)
}

// VerificarTabela devolve quantos registros a tabela tem; erro quer dizer tabela inexistente.
func (imp *Importador) VerificarTabela(ctx context.Context) (int64, error) {
	return imp.Repository.Contar(imp.DB.WithContext(ctx), consultor.Filtro{})
}

// confirmar pergunta se pode limpar a tabela; só "s" confirma.
func (imp *Importador) confirmar(pergunta string) bool {
	imp.printf("%s", pergunta)
	resp, err := bufio.NewReader(imp.Entrada).ReadString('\n')
	if err != nil && resp == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(resp)) == "s"
}

// Executar faz a importação completa do arquivo em caminho. Com confirmado=true não
// pergunta antes de limpar uma tabela que já tem dados.
func (imp *Importador) Executar(ctx context.Context, caminho string, confirmado bool) error {
	imp.printf("%s\nIMPORTAR CONSULTORES CVM\n%s\n", strings.Repeat("=", 60), strings.Repeat("=", 60))

	total, err := imp.VerificarTabela(ctx)
	if err != nil {
		imp.printf("Erro ao verificar tabela: %v\n", err)
		imp.printf("\n1. Primeiro, crie a tabela no SQL Editor do banco:\n%s\n%s%s\n", strings.Repeat("-", 40), SchemaSQL, strings.Repeat("-", 40))
		imp.printf("\n2. Depois, execute este comando novamente.\n")
		return nil
	}

	consultores, err := imp.carregarCSV(caminho)
	if err != nil {
		return err
	}

	if total > 0 {
		imp.printf("\nA tabela já contém %d registros.\n", total)
		if !confirmado && !imp.confirmar("Deseja limpar e reimportar? (s/N): ") {
			imp.printf("Operação cancelada.\n")
			return nil
		}
		if _, err := imp.Repository.RemoverTodos(imp.DB.WithContext(ctx)); err != nil {
			return fmt.Errorf("limpar tabela: %w", err)
		}
		imp.printf("Tabela limpa.\n")
	}

	if err := imp.Inserir(ctx, consultores); err != nil {
		return err
	}
	imp.printf("\nImportação concluída com sucesso!\n")
	return nil
}

// carregarCSV lê o arquivo inteiro antes de qualquer alteração na tabela.
func (imp *Importador) carregarCSV(caminho string) ([]consultor.Consultor, error) {
	imp.printf("\nCarregando CSV: %s\n", caminho)
	arquivo, err := os.Open(caminho)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", caminho, err)
	}
	defer arquivo.Close()

	consultores, err := LerCSV(arquivo, imp.agora().UTC())
	if err != nil {
		return nil, fmt.Errorf("ler %s: %w", caminho, err)
	}
	imp.printf("Consultores ativos encontrados: %d\n", len(consultores))
	return consultores, nil
}

// Inserir grava os consultores em lotes de TamanhoLote.
func (imp *Importador) Inserir(ctx context.Context, consultores []consultor.Consultor) error {
	tamanho := imp.TamanhoLote
	if tamanho <= 0 {
		tamanho = consultor.TamanhoLote
	}

	imp.printf("Inserindo %d consultores...\n", len(consultores))
	db := imp.DB.WithContext(ctx)
	for i := 0; i < len(consultores); i += tamanho {
		fim := min(i+tamanho, len(consultores))
		lote := consultores[i:fim]
		if err := imp.Repository.InserirLote(db, lote); err != nil {
			return fmt.Errorf("inserir lote %d: %w", i/tamanho+1, err)
		}
		imp.printf("  Lote %d: %d registros inseridos\n", i/tamanho+1, len(lote))
	}
	imp.printf("\nTotal inserido: %d consultores\n", len(consultores))
	return nil
}
