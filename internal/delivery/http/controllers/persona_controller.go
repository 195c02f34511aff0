package controllers

import (
	"log/slog"
	"net/http"

	"ferialibro/internal/delivery/http/helpers"
	"ferialibro/internal/domain"
)

// PersonaRequest is the request body for POST /api/participante and
// PUT /api/participante/{id}. Only nombre is required; the surname fields
// use the short keys the admin forms submit.
type PersonaRequest struct {
	Nombre      string  `json:"nombre"`
	ApellidoPat *string `json:"apellidoPat"`
	ApellidoMat *string `json:"apellidoMat"`
}

func (p PersonaRequest) Validate() []string {
	if p.Nombre == "" {
		return []string{"ingrese un nombre"}
	}
	return nil
}

type PersonaController struct {
	Logger  *slog.Logger
	Service domain.CatalogoService
}

func NewPersonaController(logger *slog.Logger, svc domain.CatalogoService) *PersonaController {
	return &PersonaController{
		Logger:  logger,
		Service: svc,
	}
}

// ListPersonas godoc
// @Summary List people (talent pool)
// @Tags catalogo
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/participante [get]
func (c *PersonaController) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := c.Service.ListPersonas(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err, "persona no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, personas)
}

func (c *PersonaController) CreatePersona(w http.ResponseWriter, r *http.Request) {
	var req PersonaRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	persona := &domain.Persona{
		Nombre:          req.Nombre,
		ApellidoPaterno: req.ApellidoPat,
		ApellidoMaterno: req.ApellidoMat,
	}
	if err := c.Service.CreatePersona(r.Context(), persona); err != nil {
		writeDomainError(w, r, c.Logger, err, "persona no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, persona)
}

func (c *PersonaController) UpdatePersona(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req PersonaRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	persona := &domain.Persona{
		ID:              id,
		Nombre:          req.Nombre,
		ApellidoPaterno: req.ApellidoPat,
		ApellidoMaterno: req.ApellidoMat,
	}
	if err := c.Service.UpdatePersona(r.Context(), persona); err != nil {
		writeDomainError(w, r, c.Logger, err, "persona no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Persona actualizada correctamente"})
}

// DeletePersona fails with 409 while the person still appears as talent on
// any event.
func (c *PersonaController) DeletePersona(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeletePersona(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err, "persona no encontrada o ya borrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Persona eliminada correctamente"})
}
