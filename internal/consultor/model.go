package consultor

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Potencial é a marcação tri-state do consultor: sim, não ou ainda indefinido.
type Potencial int

// Valores de Potencial; o zero é indefinido e vai para o banco como NULL.
const (
	PotencialIndefinido Potencial = iota
	PotencialSim
	PotencialNao
)

// NormalizarPotencial aceita apenas os literais "sim" e "nao"; qualquer outra coisa,
// inclusive nil, vira indefinido.
func NormalizarPotencial(v any) Potencial {
	s, ok := v.(string)
	if !ok {
		return PotencialIndefinido
	}
	switch s {
	case "sim":
		return PotencialSim
	case "nao":
		return PotencialNao
	default:
		return PotencialIndefinido
	}
}

func (p Potencial) String() string {
	switch p {
	case PotencialSim:
		return "sim"
	case PotencialNao:
		return "nao"
	default:
		return ""
	}
}

// Value grava indefinido como NULL.
func (p Potencial) Value() (driver.Value, error) {
	if p == PotencialIndefinido {
		return nil, nil
	}
	return p.String(), nil
}

func (p *Potencial) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = PotencialIndefinido
	case string:
		*p = NormalizarPotencial(v)
	case []byte:
		*p = NormalizarPotencial(string(v))
	default:
		return fmt.Errorf("potencial: tipo inesperado %T", src)
	}
	return nil
}

func (p Potencial) MarshalJSON() ([]byte, error) {
	if p == PotencialIndefinido {
		return []byte("null"), nil
	}
	return json.Marshal(p.String())
}

func (p *Potencial) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = NormalizarPotencial(v)
	return nil
}

// Consultor é uma linha do cadastro de consultores PF da CVM com as anotações da equipe.
type Consultor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nome        string    `gorm:"not null;index:idx_consultores_nome" json:"nome"`
	DtReg       *string   `json:"dt_reg"`
	Situacao    *string   `gorm:"index:idx_consultores_situacao" json:"situacao"`
	SiteAdmin   *string   `json:"site_admin"`
	Pesquisado  bool      `gorm:"not null;default:false" json:"pesquisado"`
	Observacoes *string   `json:"observacoes"`
	Potencial   Potencial `gorm:"type:text" json:"potencial"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (Consultor) TableName() string { return "consultores_pf" }
