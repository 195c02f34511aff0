package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ferialibro/internal/domain"
)

// rolMaxLen bounds the role label persisted per talent row; longer labels
// are truncated, not rejected.
const rolMaxLen = 50

type eventoService struct {
	eventoRepo     domain.EventoRepository
	contextTimeout time.Duration
}

func NewEventoService(eventoRepo domain.EventoRepository, timeout time.Duration) domain.EventoService {
	return &eventoService{
		eventoRepo:     eventoRepo,
		contextTimeout: timeout,
	}
}

// validarEvento enforces the field-level rules shared by create and update:
// title and start instant are required, and the end instant, when present,
// must be strictly after the start.
func validarEvento(e *domain.Evento) error {
	if strings.TrimSpace(e.Titulo) == "" {
		return domain.NewValidationError("el título y la fecha de inicio son obligatorios")
	}
	if e.FechaHoraInicio.IsZero() {
		return domain.NewValidationError("el título y la fecha de inicio son obligatorios")
	}
	if e.FechaHoraFin != nil && !e.FechaHoraFin.After(e.FechaHoraInicio) {
		return domain.NewValidationError("la fecha de fin debe ser posterior a la fecha de inicio")
	}
	return nil
}

func truncarRoles(talentos []domain.TalentoAsignado) {
	for i := range talentos {
		if r := []rune(talentos[i].Rol); len(r) > rolMaxLen {
			talentos[i].Rol = string(r[:rolMaxLen])
		}
	}
}

func (s *eventoService) CreateEvento(ctx context.Context, evento *domain.Evento) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validarEvento(evento); err != nil {
		return err
	}
	truncarRoles(evento.Talentos)
	return s.eventoRepo.Create(ctx, evento)
}

func (s *eventoService) UpdateEvento(ctx context.Context, evento *domain.Evento, replaceTalentos bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validarEvento(evento); err != nil {
		return err
	}
	truncarRoles(evento.Talentos)
	return s.eventoRepo.Update(ctx, evento, replaceTalentos)
}

func (s *eventoService) DeleteEvento(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventoRepo.Delete(ctx, id)
}

func (s *eventoService) ListCartelera(ctx context.Context, filtro domain.CarteleraFiltro) ([]*domain.CarteleraEvento, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventos, err := s.eventoRepo.ListCartelera(ctx, filtro)
	if err != nil {
		return nil, fmt.Errorf("list cartelera: %w", err)
	}
	return eventos, nil
}
