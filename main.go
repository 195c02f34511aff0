package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"ferialibro/config"
	_ "ferialibro/docs"
	delivery "ferialibro/internal/delivery/http"
	"ferialibro/internal/delivery/http/controllers"
	"ferialibro/internal/delivery/http/middleware"
	"ferialibro/internal/repository/postgres"
	"ferialibro/internal/services"

	_ "github.com/lib/pq"
)

// @title Feria del Libro API
// @version 1.0
// @description Event management backend for the book fair: admin CRUD over
// @description events and their catalogs, plus the public cartelera listing.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	const serviceTimeout = 5 * time.Second

	eventoRepo := postgres.NewEventoRepository(db)
	salaRepo := postgres.NewSalaRepository(db)
	tipoRepo := postgres.NewTipoEventoRepository(db)
	clasificacionRepo := postgres.NewClasificacionRepository(db)
	cicloRepo := postgres.NewCicloRepository(db)
	expositorRepo := postgres.NewExpositorRepository(db)
	personaRepo := postgres.NewPersonaRepository(db)

	eventoService := services.NewEventoService(eventoRepo, serviceTimeout)
	catalogoService := services.NewCatalogoService(
		salaRepo, tipoRepo, clasificacionRepo, cicloRepo, expositorRepo, personaRepo,
		serviceTimeout,
	)

	router := delivery.NewRouter(
		controllers.NewEventoController(logger, eventoService),
		controllers.NewCatalogoController(logger, catalogoService),
		controllers.NewExpositorController(logger, catalogoService),
		controllers.NewPersonaController(logger, catalogoService),
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.LoggingMiddleware(logger, router))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
