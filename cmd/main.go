package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/KromaEnergia/consultores-cvm/internal/config"
	"github.com/KromaEnergia/consultores-cvm/internal/consultor"
	"github.com/KromaEnergia/consultores-cvm/internal/utils"
	"github.com/KromaEnergia/consultores-cvm/internal/utils/db"
	"github.com/KromaEnergia/consultores-cvm/internal/web"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Erro ao carregar configuração:", err)
	}

	logger := utils.NovoLogger(os.Stdout, cfg.LogLevel)

	database, err := db.ConnectDataBase(cfg)
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	consultorHandler := consultor.NewHandler(database, logger)

	// Router
	r := mux.NewRouter()
	r.Use(utils.MiddlewareLog(logger))
	r.HandleFunc("/", web.Index).Methods("GET")
	consultorHandler.RegistrarRotas(r)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigens,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	// Inicia servidor
	fmt.Printf("Servidor rodando em http://localhost%s\n", cfg.Endereco())
	log.Fatal(http.ListenAndServe(cfg.Endereco(), c.Handler(r)))
}
