package consultor

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe o Service via HTTP.
type Handler struct {
	Service *Service
	Logger  *slog.Logger
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, logger *slog.Logger) *Handler {
	return &Handler{
		Service: NewService(db),
		Logger:  logger,
	}
}

// RegistrarRotas adiciona as rotas /api ao router.
func (h *Handler) RegistrarRotas(r *mux.Router) {
	r.HandleFunc("/api/consultores", h.ListarConsultores).Methods("GET")
	r.HandleFunc("/api/consultor/{id:[0-9]+}", h.AtualizarConsultor).Methods("POST")
	r.HandleFunc("/api/stats", h.Estatisticas).Methods("GET")
	r.HandleFunc("/api/export/csv", h.ExportarCSV).Methods("GET")
	r.HandleFunc("/api/export/potenciais", h.ExportarPotenciais).Methods("GET")
}

type listaResponse struct {
	Consultores []Consultor `json:"consultores"`
	Total       int         `json:"total"`
}

type atualizacaoResponse struct {
	Success bool       `json:"success"`
	Data    *Consultor `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type erroResponse struct {
	Error string `json:"error"`
}

func responderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) erroInterno(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Logger.Error(msg, "caminho", r.URL.Path, "erro", err)
	http.Error(w, msg, http.StatusInternalServerError)
}

// ListarConsultores trata GET /api/consultores
func (h *Handler) ListarConsultores(w http.ResponseWriter, r *http.Request) {
	consultores, err := h.Service.Listar(r.Context(), ParametrosDaQuery(r.URL.Query()))
	if err != nil {
		h.erroInterno(w, r, "erro ao listar consultores", err)
		return
	}
	responderJSON(w, http.StatusOK, listaResponse{Consultores: consultores, Total: len(consultores)})
}

// AtualizarConsultor trata POST /api/consultor/{id}
func (h *Handler) AtualizarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		responderJSON(w, http.StatusBadRequest, atualizacaoResponse{Error: "ID inválido"})
		return
	}

	var dados map[string]any
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		responderJSON(w, http.StatusBadRequest, atualizacaoResponse{Error: "payload inválido"})
		return
	}

	c, err := h.Service.Atualizar(r.Context(), uint(id), dados)
	switch {
	case err == nil:
		responderJSON(w, http.StatusOK, atualizacaoResponse{Success: true, Data: c})
	case errors.Is(err, ErrNadaParaAtualizar):
		responderJSON(w, http.StatusBadRequest, atualizacaoResponse{Error: "Nenhum dado para atualizar"})
	case errors.Is(err, ErrPayloadInvalido):
		responderJSON(w, http.StatusBadRequest, atualizacaoResponse{Error: err.Error()})
	case errors.Is(err, ErrConsultorNaoEncontrado):
		responderJSON(w, http.StatusNotFound, atualizacaoResponse{Error: "Consultor não encontrado"})
	default:
		h.erroInterno(w, r, "erro ao atualizar consultor", err)
	}
}

// Estatisticas trata GET /api/stats
func (h *Handler) Estatisticas(w http.ResponseWriter, r *http.Request) {
	est, err := h.Service.Estatisticas(r.Context())
	if err != nil {
		h.erroInterno(w, r, "erro ao calcular estatísticas", err)
		return
	}
	responderJSON(w, http.StatusOK, est)
}

func responderCSV(w http.ResponseWriter, arquivo string, conteudo []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", arquivo))
	w.WriteHeader(http.StatusOK)
	w.Write(conteudo)
}

// ExportarCSV trata GET /api/export/csv
func (h *Handler) ExportarCSV(w http.ResponseWriter, r *http.Request) {
	conteudo, err := h.Service.ExportarCompleto(r.Context())
	if err != nil {
		h.erroInterno(w, r, "erro ao exportar consultores", err)
		return
	}
	responderCSV(w, ArquivoExportCompleto, conteudo)
}

// ExportarPotenciais trata GET /api/export/potenciais
func (h *Handler) ExportarPotenciais(w http.ResponseWriter, r *http.Request) {
	conteudo, err := h.Service.ExportarPotenciais(r.Context())
	if errors.Is(err, ErrNadaParaExportar) {
		responderJSON(w, http.StatusNotFound, erroResponse{Error: "Nenhum consultor marcado como potencial"})
		return
	}
	if err != nil {
		h.erroInterno(w, r, "erro ao exportar potenciais", err)
		return
	}
	responderCSV(w, ArquivoExportPotenciais, conteudo)
}
