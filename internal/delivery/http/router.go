package http

import (
	"net/http"

	"ferialibro/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventoController *controllers.EventoController,
	catalogoController *controllers.CatalogoController,
	expositorController *controllers.ExpositorController,
	personaController *controllers.PersonaController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Eventos (cartelera)
	mux.HandleFunc("GET /api/evento", eventoController.ListCartelera)
	mux.HandleFunc("POST /api/evento", eventoController.CreateEvento)
	mux.HandleFunc("PUT /api/evento/{id}", eventoController.UpdateEvento)
	mux.HandleFunc("DELETE /api/evento/{id}", eventoController.DeleteEvento)

	// Catálogos
	mux.HandleFunc("GET /api/salas", catalogoController.ListSalas)
	mux.HandleFunc("POST /api/salas", catalogoController.CreateSala)
	mux.HandleFunc("PUT /api/salas/{id}", catalogoController.UpdateSala)
	mux.HandleFunc("DELETE /api/salas/{id}", catalogoController.DeleteSala)

	mux.HandleFunc("GET /api/tipo", catalogoController.ListTipos)
	mux.HandleFunc("POST /api/tipo", catalogoController.CreateTipo)
	mux.HandleFunc("PUT /api/tipo/{id}", catalogoController.UpdateTipo)
	mux.HandleFunc("DELETE /api/tipo/{id}", catalogoController.DeleteTipo)

	mux.HandleFunc("GET /api/clasificacion", catalogoController.ListClasificaciones)
	mux.HandleFunc("POST /api/clasificacion", catalogoController.CreateClasificacion)
	mux.HandleFunc("PUT /api/clasificacion/{id}", catalogoController.UpdateClasificacion)
	mux.HandleFunc("DELETE /api/clasificacion/{id}", catalogoController.DeleteClasificacion)

	mux.HandleFunc("GET /api/ciclo", catalogoController.ListCiclos)
	mux.HandleFunc("POST /api/ciclo", catalogoController.CreateCiclo)
	mux.HandleFunc("PUT /api/ciclo/{id}", catalogoController.UpdateCiclo)
	mux.HandleFunc("DELETE /api/ciclo/{id}", catalogoController.DeleteCiclo)

	mux.HandleFunc("GET /api/expositor", expositorController.ListExpositores)
	mux.HandleFunc("POST /api/expositor", expositorController.CreateExpositor)
	mux.HandleFunc("PUT /api/expositor/{id}", expositorController.UpdateExpositor)
	mux.HandleFunc("DELETE /api/expositor/{id}", expositorController.DeleteExpositor)

	mux.HandleFunc("GET /api/participante", personaController.ListPersonas)
	mux.HandleFunc("POST /api/participante", personaController.CreatePersona)
	mux.HandleFunc("PUT /api/participante/{id}", personaController.UpdatePersona)
	mux.HandleFunc("DELETE /api/participante/{id}", personaController.DeletePersona)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
