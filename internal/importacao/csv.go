package importacao

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KromaEnergia/consultores-cvm/internal/consultor"
	"golang.org/x/text/encoding/charmap"
)

// SituacaoAtiva é o único valor de SIT importado.
const SituacaoAtiva = "EM FUNCIONAMENTO NORMAL"

// LerCSV lê o cadastro de consultores PF da CVM (latin-1, separado por ';') e
// devolve só os consultores em funcionamento normal.
func LerCSV(r io.Reader, agora time.Time) ([]consultor.Consultor, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	cabecalho, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("arquivo vazio")
		}
		return nil, fmt.Errorf("ler cabeçalho: %w", err)
	}

	colunas := map[string]int{}
	for i, nome := range cabecalho {
		colunas[strings.TrimSpace(nome)] = i
	}
	for _, obrigatoria := range []string{"NOME", "SIT"} {
		if _, ok := colunas[obrigatoria]; !ok {
			return nil, fmt.Errorf("coluna %s ausente no cabeçalho", obrigatoria)
		}
	}

	campo := func(registro []string, coluna string) string {
		i, ok := colunas[coluna]
		if !ok || i >= len(registro) {
			return ""
		}
		return registro[i]
	}

	var consultores []consultor.Consultor
	for linha := 2; ; linha++ {
		registro, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ler linha %d: %w", linha, err)
		}

		situacao := campo(registro, "SIT")
		if situacao != SituacaoAtiva {
			continue
		}
		nome := strings.TrimSpace(campo(registro, "NOME"))
		if nome == "" {
			continue
		}

		dtReg := campo(registro, "DT_REG")
		site := campo(registro, "SITE_ADMIN")
		consultores = append(consultores, consultor.Consultor{
			Nome:       nome,
			DtReg:      &dtReg,
			Situacao:   &situacao,
			SiteAdmin:  &site,
			Pesquisado: false,
			Potencial:  consultor.PotencialIndefinido,
			UpdatedAt:  agora,
		})
	}
	return consultores, nil
}
