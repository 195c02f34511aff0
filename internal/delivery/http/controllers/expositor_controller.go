package controllers

import (
	"log/slog"
	"net/http"

	"ferialibro/internal/delivery/http/helpers"
	"ferialibro/internal/domain"
)

// ExpositorRequest is the request body for POST /api/expositor and
// PUT /api/expositor/{id}. numStand is optional; nombre and the line of
// business (giro) are required.
type ExpositorRequest struct {
	Nombre        string  `json:"nombre"`
	TipoExpositor string  `json:"tipo_expositor"`
	NumStand      *string `json:"numStand"`
}

func (e ExpositorRequest) Validate() []string {
	if e.Nombre == "" || e.TipoExpositor == "" {
		return []string{"faltan datos obligatorios (nombre o giro)"}
	}
	return nil
}

type ExpositorController struct {
	Logger  *slog.Logger
	Service domain.CatalogoService
}

func NewExpositorController(logger *slog.Logger, svc domain.CatalogoService) *ExpositorController {
	return &ExpositorController{
		Logger:  logger,
		Service: svc,
	}
}

// ListExpositores godoc
// @Summary List exhibitors
// @Tags catalogo
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/expositor [get]
func (c *ExpositorController) ListExpositores(w http.ResponseWriter, r *http.Request) {
	expositores, err := c.Service.ListExpositores(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err, "expositor no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, expositores)
}

func (c *ExpositorController) CreateExpositor(w http.ResponseWriter, r *http.Request) {
	var req ExpositorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	expositor := &domain.Expositor{
		Nombre:        req.Nombre,
		TipoExpositor: req.TipoExpositor,
		NumStand:      req.NumStand,
	}
	if err := c.Service.CreateExpositor(r.Context(), expositor); err != nil {
		writeDomainError(w, r, c.Logger, err, "expositor no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, expositor)
}

func (c *ExpositorController) UpdateExpositor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req ExpositorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	expositor := &domain.Expositor{
		ID:            id,
		Nombre:        req.Nombre,
		TipoExpositor: req.TipoExpositor,
		NumStand:      req.NumStand,
	}
	if err := c.Service.UpdateExpositor(r.Context(), expositor); err != nil {
		writeDomainError(w, r, c.Logger, err, "expositor no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Expositor actualizado correctamente"})
}

// DeleteExpositor fails with 409 when events still reference the exhibitor.
func (c *ExpositorController) DeleteExpositor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteExpositor(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err, "expositor no encontrado o ya borrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Expositor eliminado correctamente"})
}
