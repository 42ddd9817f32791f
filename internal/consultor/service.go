package consultor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNadaParaAtualizar      = errors.New("nenhum dado para atualizar")
	ErrConsultorNaoEncontrado = errors.New("consultor não encontrado")
	ErrNadaParaExportar       = errors.New("nenhum consultor marcado como potencial")
	ErrPayloadInvalido        = errors.New("payload inválido")
)

// Estatisticas são as três contagens de GET /api/stats.
type Estatisticas struct {
	Total       int64 `json:"total"`
	Pesquisados int64 `json:"pesquisados"`
	Potenciais  int64 `json:"potenciais"`
}

// Service executa as consultas e atualizações sobre consultores_pf.
type Service struct {
	DB         *gorm.DB
	Repository Repository
	agora      func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:         db,
		Repository: NewRepository(),
		agora:      time.Now,
	}
}

func (s *Service) db(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}

// Listar devolve todos os consultores que passam pelos filtros, ordenados por nome.
func (s *Service) Listar(ctx context.Context, p ParametrosFiltro) ([]Consultor, error) {
	consultores, err := s.Repository.Listar(s.db(ctx), CompilarFiltro(p))
	if err != nil {
		return nil, fmt.Errorf("listar consultores: %w", err)
	}
	return consultores, nil
}

// CamposAtualizacao monta o conjunto de colunas a gravar a partir do corpo recebido.
// Só pesquisado, observacoes e potencial são considerados; o resto é ignorado.
func CamposAtualizacao(dados map[string]any) (map[string]interface{}, error) {
	campos := map[string]interface{}{}

	if v, ok := dados["pesquisado"]; ok {
		campos["pesquisado"] = verdadeiro(v)
	}

	if v, ok := dados["observacoes"]; ok {
		switch obs := v.(type) {
		case nil:
			campos["observacoes"] = nil
		case string:
			campos["observacoes"] = obs
		default:
			return nil, fmt.Errorf("%w: observacoes deve ser texto ou null", ErrPayloadInvalido)
		}
	}

	if v, ok := dados["potencial"]; ok {
		campos["potencial"] = NormalizarPotencial(v)
	}

	return campos, nil
}

// verdadeiro segue a regra de verdade do JSON decodificado: false, null, 0, "" e
// coleções vazias são falsos.
func verdadeiro(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

// Atualizar aplica uma atualização parcial no consultor id e devolve o registro gravado.
func (s *Service) Atualizar(ctx context.Context, id uint, dados map[string]any) (*Consultor, error) {
	campos, err := CamposAtualizacao(dados)
	if err != nil {
		return nil, err
	}
	if len(campos) == 0 {
		return nil, ErrNadaParaAtualizar
	}
	campos["updated_at"] = s.agora().UTC()

	db := s.db(ctx)
	afetados, err := s.Repository.Atualizar(db, id, campos)
	if err != nil {
		return nil, fmt.Errorf("atualizar consultor %d: %w", id, err)
	}
	if afetados == 0 {
		return nil, ErrConsultorNaoEncontrado
	}

	c, err := s.Repository.BuscarPorID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultorNaoEncontrado
		}
		return nil, fmt.Errorf("buscar consultor %d: %w", id, err)
	}
	return c, nil
}

// Estatisticas conta total, pesquisados e potenciais direto no banco, sem cache.
func (s *Service) Estatisticas(ctx context.Context) (Estatisticas, error) {
	var est Estatisticas
	db := s.db(ctx)
	todos := Filtro{}

	var err error
	if est.Total, err = s.Repository.Contar(db, todos); err != nil {
		return Estatisticas{}, fmt.Errorf("contar total: %w", err)
	}
	if est.Pesquisados, err = s.Repository.Contar(db, todos.Igual("pesquisado", true)); err != nil {
		return Estatisticas{}, fmt.Errorf("contar pesquisados: %w", err)
	}
	if est.Potenciais, err = s.Repository.Contar(db, todos.Igual("potencial", PotencialSim)); err != nil {
		return Estatisticas{}, fmt.Errorf("contar potenciais: %w", err)
	}
	return est, nil
}

// ExportarCompleto gera o CSV com todos os consultores.
func (s *Service) ExportarCompleto(ctx context.Context) ([]byte, error) {
	consultores, err := s.Repository.Listar(s.db(ctx), Filtro{OrdenarPor: "nome"})
	if err != nil {
		return nil, fmt.Errorf("listar consultores: %w", err)
	}

	var buf bytes.Buffer
	if err := EscreverCSVCompleto(&buf, consultores); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportarPotenciais gera o CSV só com potencial = sim; sem nenhum, devolve ErrNadaParaExportar.
func (s *Service) ExportarPotenciais(ctx context.Context) ([]byte, error) {
	f := Filtro{OrdenarPor: "nome"}.Igual("potencial", PotencialSim)
	consultores, err := s.Repository.Listar(s.db(ctx), f)
	if err != nil {
		return nil, fmt.Errorf("listar potenciais: %w", err)
	}
	if len(consultores) == 0 {
		return nil, ErrNadaParaExportar
	}

	var buf bytes.Buffer
	if err := EscreverCSVPotenciais(&buf, consultores); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
