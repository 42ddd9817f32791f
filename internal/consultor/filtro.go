package consultor

import (
	"fmt"
	"net/url"
	"strings"

	"gorm.io/gorm"
)

// ParametrosFiltro são os parâmetros opcionais de GET /api/consultores.
type ParametrosFiltro struct {
	Situacao   string
	Pesquisado string
	Potencial  string
	Busca      string
}

// ParametrosDaQuery lê os filtros da query string; parâmetros ausentes ficam vazios.
func ParametrosDaQuery(q url.Values) ParametrosFiltro {
	return ParametrosFiltro{
		Situacao:   q.Get("situacao"),
		Pesquisado: q.Get("pesquisado"),
		Potencial:  q.Get("potencial"),
		Busca:      q.Get("busca"),
	}
}

// Operador diz como uma Condicao compara a coluna com o valor.
type Operador string

// Operadores aceitos por Filtro.Aplicar.
const (
	OperadorContem Operador = "contem"
	OperadorIgual  Operador = "igual"
	OperadorNulo   Operador = "nulo"
)

// Condicao é um predicado sobre uma coluna de consultores_pf.
type Condicao struct {
	Campo    string
	Operador Operador
	Valor    any
}

// Filtro é a descrição declarativa de uma leitura: condições combinadas com AND
// e a coluna de ordenação ascendente.
type Filtro struct {
	Condicoes  []Condicao
	OrdenarPor string
}

// Igual restringe o filtro a campo = valor, preservando as condições já existentes.
func (f Filtro) Igual(campo string, valor any) Filtro {
	conds := make([]Condicao, 0, len(f.Condicoes)+1)
	conds = append(conds, f.Condicoes...)
	f.Condicoes = append(conds, Condicao{Campo: campo, Operador: OperadorIgual, Valor: valor})
	return f
}

// CompilarFiltro traduz os parâmetros em um Filtro. String vazia conta como ausente.
func CompilarFiltro(p ParametrosFiltro) Filtro {
	f := Filtro{OrdenarPor: "nome"}

	if p.Situacao != "" {
		f.Condicoes = append(f.Condicoes, Condicao{Campo: "situacao", Operador: OperadorContem, Valor: p.Situacao})
	}

	switch p.Pesquisado {
	case "sim":
		f.Condicoes = append(f.Condicoes, Condicao{Campo: "pesquisado", Operador: OperadorIgual, Valor: true})
	case "nao":
		f.Condicoes = append(f.Condicoes, Condicao{Campo: "pesquisado", Operador: OperadorIgual, Valor: false})
	}

	switch p.Potencial {
	case "sim":
		f.Condicoes = append(f.Condicoes, Condicao{Campo: "potencial", Operador: OperadorIgual, Valor: PotencialSim})
	case "nao":
		f.Condicoes = append(f.Condicoes, Condicao{Campo: "potencial", Operador: OperadorIgual, Valor: PotencialNao})
	case "indefinido":
		f.Condicoes = append(f.Condicoes, Condicao{Campo: "potencial", Operador: OperadorNulo})
	}

	if p.Busca != "" {
		f.Condicoes = append(f.Condicoes, Condicao{Campo: "nome", Operador: OperadorContem, Valor: p.Busca})
	}

	return f
}

var escapeLike = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Aplicar converte o filtro em cláusulas gorm.
func (f Filtro) Aplicar(db *gorm.DB) *gorm.DB {
	for _, c := range f.Condicoes {
		switch c.Operador {
		case OperadorContem:
			padrao := "%" + escapeLike.Replace(fmt.Sprint(c.Valor)) + "%"
			db = db.Where(fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, c.Campo), padrao)
		case OperadorIgual:
			db = db.Where(fmt.Sprintf("%s = ?", c.Campo), c.Valor)
		case OperadorNulo:
			db = db.Where(fmt.Sprintf("%s IS NULL", c.Campo))
		}
	}
	if f.OrdenarPor != "" {
		db = db.Order(f.OrdenarPor)
	}
	return db
}
