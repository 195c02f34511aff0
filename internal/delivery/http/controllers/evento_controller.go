package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"ferialibro/internal/delivery/http/helpers"
	"ferialibro/internal/domain"
)

// fechaLayouts lists the accepted formats for event instants. The admin form
// submits datetime-local values without a zone; API clients may send RFC3339.
var fechaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

func parseFecha(s string) (time.Time, bool) {
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TalentoEntry is one element of talentos_ids in an event request body.
type TalentoEntry struct {
	IDPersona int    `json:"id_persona"`
	Rol       string `json:"rol"`
}

// EventoRequest is the request body for POST /api/evento and
// PUT /api/evento/{id}. Dates travel as strings so both zoned and
// datetime-local values are accepted. A nil talentos_ids on update leaves the
// stored talent set untouched; a present (possibly empty) array replaces it.
type EventoRequest struct {
	Titulo          string          `json:"titulo"`
	Descripcion     *string         `json:"descripcion"`
	FechaHoraInicio string          `json:"fecha_hora_inicio"`
	FechaHoraFin    *string         `json:"fecha_hora_fin"`
	IDSala          *int            `json:"id_sala"`
	IDTipo          *int            `json:"id_tipo"`
	IDClasificacion *int            `json:"id_clasificacion"`
	IDCiclo         *int            `json:"id_ciclo"`
	IDExpositor     *int            `json:"id_expositor"`
	TalentosIDs     *[]TalentoEntry `json:"talentos_ids"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (e EventoRequest) Validate() []string {
	var errs []string
	if e.Titulo == "" || e.FechaHoraInicio == "" {
		errs = append(errs, "el título y la fecha de inicio son obligatorios")
	}
	if e.FechaHoraInicio != "" {
		if _, ok := parseFecha(e.FechaHoraInicio); !ok {
			errs = append(errs, "fecha_hora_inicio inválida")
		}
	}
	if e.FechaHoraFin != nil && *e.FechaHoraFin != "" {
		if _, ok := parseFecha(*e.FechaHoraFin); !ok {
			errs = append(errs, "fecha_hora_fin inválida")
		}
	}
	return errs
}

// toEvento converts the validated request into a domain event. The second
// return value reports whether a talent set was submitted at all.
func (e EventoRequest) toEvento(id int) (*domain.Evento, bool) {
	evento := &domain.Evento{
		ID:              id,
		Titulo:          e.Titulo,
		Descripcion:     e.Descripcion,
		IDSala:          e.IDSala,
		IDTipo:          e.IDTipo,
		IDClasificacion: e.IDClasificacion,
		IDCiclo:         e.IDCiclo,
		IDExpositor:     e.IDExpositor,
	}
	if e.Descripcion != nil && *e.Descripcion == "" {
		evento.Descripcion = nil
	}
	evento.FechaHoraInicio, _ = parseFecha(e.FechaHoraInicio)
	if e.FechaHoraFin != nil && *e.FechaHoraFin != "" {
		fin, _ := parseFecha(*e.FechaHoraFin)
		evento.FechaHoraFin = &fin
	}
	if e.TalentosIDs == nil {
		return evento, false
	}
	evento.Talentos = make([]domain.TalentoAsignado, 0, len(*e.TalentosIDs))
	for _, t := range *e.TalentosIDs {
		evento.Talentos = append(evento.Talentos, domain.TalentoAsignado{IDPersona: t.IDPersona, Rol: t.Rol})
	}
	return evento, true
}

// CreateEventoResponse is the success body for POST /api/evento (201).
type CreateEventoResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type EventoController struct {
	Logger  *slog.Logger
	Service domain.EventoService
}

func NewEventoController(logger *slog.Logger, svc domain.EventoService) *EventoController {
	return &EventoController{
		Logger:  logger,
		Service: svc,
	}
}

// ListCartelera godoc
// @Summary List the event billboard
// @Description Returns the denormalized event listing (cartelera) with joined catalog names and the aggregated talent list per event. Optional filters: q matches the title, fecha (YYYY-MM-DD) keeps events starting on that day.
// @Tags evento
// @Produce json
// @Param q query string false "Title search"
// @Param fecha query string false "Start date filter (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the cartelera rows"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/evento [get]
func (c *EventoController) ListCartelera(w http.ResponseWriter, r *http.Request) {
	filtro := domain.CarteleraFiltro{Busqueda: r.URL.Query().Get("q")}
	if f := r.URL.Query().Get("fecha"); f != "" {
		fecha, err := time.Parse("2006-01-02", f)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "fecha inválida, use AAAA-MM-DD")
			return
		}
		filtro.Fecha = &fecha
	}
	eventos, err := c.Service.ListCartelera(r.Context(), filtro)
	if err != nil {
		writeDomainError(w, r, c.Logger, err, "evento no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, eventos)
}

// CreateEvento godoc
// @Summary Create an event
// @Description Creates an event with its optional catalog references and talent set. When the event has a room and an end time, the time window must not overlap another event in the same room (back-to-back is allowed).
// @Tags evento
// @Accept json
// @Produce json
// @Param evento body EventoRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the generated id"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing fields, end before start, unknown catalog id)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room already booked)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/evento [post]
func (c *EventoController) CreateEvento(w http.ResponseWriter, r *http.Request) {
	var req EventoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	evento, _ := req.toEvento(0)
	if err := c.Service.CreateEvento(r.Context(), evento); err != nil {
		writeDomainError(w, r, c.Logger, err, "evento no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateEventoResponse{
		ID:      evento.ID,
		Message: "Evento creado exitosamente",
	})
}

// UpdateEvento godoc
// @Summary Update an event
// @Description Replaces the event's scalar fields. The overlap check excludes the event's own row, so keeping the same window never conflicts with itself. If talentos_ids is present, the stored talent set is fully replaced by it; if absent, it is left untouched.
// @Tags evento
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param evento body EventoRequest true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (room already booked)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/evento/{id} [put]
func (c *EventoController) UpdateEvento(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req EventoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	evento, replaceTalentos := req.toEvento(id)
	if err := c.Service.UpdateEvento(r.Context(), evento, replaceTalentos); err != nil {
		writeDomainError(w, r, c.Logger, err, "evento no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Evento actualizado correctamente"})
}

// DeleteEvento godoc
// @Summary Delete an event
// @Description Removes the event's talent associations and then the event row itself.
// @Tags evento
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/evento/{id} [delete]
func (c *EventoController) DeleteEvento(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvento(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err, "evento no encontrado o ya eliminado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Evento eliminado correctamente"})
}
