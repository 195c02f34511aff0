package services

import (
	"context"
	"strings"
	"time"

	"ferialibro/internal/domain"
)

type catalogoService struct {
	salaRepo          domain.SalaRepository
	tipoRepo          domain.TipoEventoRepository
	clasificacionRepo domain.ClasificacionRepository
	cicloRepo         domain.CicloRepository
	expositorRepo     domain.ExpositorRepository
	personaRepo       domain.PersonaRepository
	contextTimeout    time.Duration
}

func NewCatalogoService(
	salaRepo domain.SalaRepository,
	tipoRepo domain.TipoEventoRepository,
	clasificacionRepo domain.ClasificacionRepository,
	cicloRepo domain.CicloRepository,
	expositorRepo domain.ExpositorRepository,
	personaRepo domain.PersonaRepository,
	timeout time.Duration,
) domain.CatalogoService {
	return &catalogoService{
		salaRepo:          salaRepo,
		tipoRepo:          tipoRepo,
		clasificacionRepo: clasificacionRepo,
		cicloRepo:         cicloRepo,
		expositorRepo:     expositorRepo,
		personaRepo:       personaRepo,
		contextTimeout:    timeout,
	}
}

func requerido(valor, mensaje string) error {
	if strings.TrimSpace(valor) == "" {
		return domain.NewValidationError(mensaje)
	}
	return nil
}

func (s *catalogoService) ListSalas(ctx context.Context) ([]*domain.Sala, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.salaRepo.List(ctx)
}

func (s *catalogoService) CreateSala(ctx context.Context, sala *domain.Sala) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(sala.Nombre, "el nombre es obligatorio"); err != nil {
		return err
	}
	return s.salaRepo.Create(ctx, sala)
}

func (s *catalogoService) UpdateSala(ctx context.Context, sala *domain.Sala) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(sala.Nombre, "el nombre es obligatorio"); err != nil {
		return err
	}
	return s.salaRepo.Update(ctx, sala)
}

func (s *catalogoService) DeleteSala(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.salaRepo.Delete(ctx, id)
}

func (s *catalogoService) ListTipos(ctx context.Context) ([]*domain.TipoEvento, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.tipoRepo.List(ctx)
}

func (s *catalogoService) CreateTipo(ctx context.Context, tipo *domain.TipoEvento) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(tipo.Nombre, "el nombre es obligatorio"); err != nil {
		return err
	}
	return s.tipoRepo.Create(ctx, tipo)
}

func (s *catalogoService) UpdateTipo(ctx context.Context, tipo *domain.TipoEvento) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(tipo.Nombre, "el nombre es obligatorio"); err != nil {
		return err
	}
	return s.tipoRepo.Update(ctx, tipo)
}

func (s *catalogoService) DeleteTipo(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.tipoRepo.Delete(ctx, id)
}

func (s *catalogoService) ListClasificaciones(ctx context.Context) ([]*domain.Clasificacion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.clasificacionRepo.List(ctx)
}

func (s *catalogoService) CreateClasificacion(ctx context.Context, clasificacion *domain.Clasificacion) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(clasificacion.Rango, "el rango es obligatorio"); err != nil {
		return err
	}
	return s.clasificacionRepo.Create(ctx, clasificacion)
}

func (s *catalogoService) UpdateClasificacion(ctx context.Context, clasificacion *domain.Clasificacion) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(clasificacion.Rango, "el rango es obligatorio"); err != nil {
		return err
	}
	return s.clasificacionRepo.Update(ctx, clasificacion)
}

func (s *catalogoService) DeleteClasificacion(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.clasificacionRepo.Delete(ctx, id)
}

func (s *catalogoService) ListCiclos(ctx context.Context) ([]*domain.Ciclo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.cicloRepo.List(ctx)
}

func (s *catalogoService) CreateCiclo(ctx context.Context, ciclo *domain.Ciclo) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(ciclo.Nombre, "el nombre es obligatorio"); err != nil {
		return err
	}
	return s.cicloRepo.Create(ctx, ciclo)
}

func (s *catalogoService) UpdateCiclo(ctx context.Context, ciclo *domain.Ciclo) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(ciclo.Nombre, "el nombre es obligatorio"); err != nil {
		return err
	}
	return s.cicloRepo.Update(ctx, ciclo)
}

func (s *catalogoService) DeleteCiclo(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.cicloRepo.Delete(ctx, id)
}

func (s *catalogoService) ListExpositores(ctx context.Context) ([]*domain.Expositor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.expositorRepo.List(ctx)
}

func (s *catalogoService) CreateExpositor(ctx context.Context, expositor *domain.Expositor) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := validarExpositor(expositor); err != nil {
		return err
	}
	return s.expositorRepo.Create(ctx, expositor)
}

func (s *catalogoService) UpdateExpositor(ctx context.Context, expositor *domain.Expositor) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := validarExpositor(expositor); err != nil {
		return err
	}
	return s.expositorRepo.Update(ctx, expositor)
}

func (s *catalogoService) DeleteExpositor(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.expositorRepo.Delete(ctx, id)
}

// validarExpositor requires both the name and the line of business (giro).
func validarExpositor(e *domain.Expositor) error {
	if strings.TrimSpace(e.Nombre) == "" || strings.TrimSpace(e.TipoExpositor) == "" {
		return domain.NewValidationError("nombre y giro son obligatorios")
	}
	return nil
}

func (s *catalogoService) ListPersonas(ctx context.Context) ([]*domain.Persona, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.personaRepo.List(ctx)
}

func (s *catalogoService) CreatePersona(ctx context.Context, persona *domain.Persona) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(persona.Nombre, "ingrese un nombre"); err != nil {
		return err
	}
	return s.personaRepo.Create(ctx, persona)
}

func (s *catalogoService) UpdatePersona(ctx context.Context, persona *domain.Persona) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := requerido(persona.Nombre, "ingrese un nombre"); err != nil {
		return err
	}
	return s.personaRepo.Update(ctx, persona)
}

func (s *catalogoService) DeletePersona(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.personaRepo.Delete(ctx, id)
}
