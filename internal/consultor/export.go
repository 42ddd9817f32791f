package consultor

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const (
	ArquivoExportCompleto   = "consultores_cvm.csv"
	ArquivoExportPotenciais = "potenciais_adam.csv"
)

var (
	cabecalhoCompleto   = []string{"Nome", "Registro CVM", "Situacao", "Site", "Pesquisado", "Potencial", "Observacoes"}
	cabecalhoPotenciais = []string{"Nome", "Registro CVM", "Site", "Observacoes"}
)

func texto(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Nao"
}

func escreverCSV(w io.Writer, cabecalho []string, linhas [][]string) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(cabecalho); err != nil {
		return fmt.Errorf("escrever cabeçalho: %w", err)
	}
	if err := cw.WriteAll(linhas); err != nil {
		return fmt.Errorf("escrever linhas: %w", err)
	}
	return nil
}

// EscreverCSVCompleto escreve todas as colunas, com Pesquisado como Sim/Nao e
// Potencial em maiúsculas (vazio quando indefinido).
func EscreverCSVCompleto(w io.Writer, consultores []Consultor) error {
	linhas := make([][]string, 0, len(consultores))
	for _, c := range consultores {
		linhas = append(linhas, []string{
			c.Nome,
			texto(c.DtReg),
			texto(c.Situacao),
			texto(c.SiteAdmin),
			simNao(c.Pesquisado),
			strings.ToUpper(c.Potencial.String()),
			texto(c.Observacoes),
		})
	}
	return escreverCSV(w, cabecalhoCompleto, linhas)
}

// EscreverCSVPotenciais escreve o layout reduzido enviado para prospecção.
func EscreverCSVPotenciais(w io.Writer, consultores []Consultor) error {
	linhas := make([][]string, 0, len(consultores))
	for _, c := range consultores {
		linhas = append(linhas, []string{
			c.Nome,
			texto(c.DtReg),
			texto(c.SiteAdmin),
			texto(c.Observacoes),
		})
	}
	return escreverCSV(w, cabecalhoPotenciais, linhas)
}
