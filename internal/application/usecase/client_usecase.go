package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

// ClientUseCase consulta y edición de los clientes captados por cada asesor.
// El alta ocurre al crear la primera cotización.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// ListByAdvisor clientes captados por el asesor.
func (uc *ClientUseCase) ListByAdvisor(ctx context.Context, legajo int64) ([]dto.ClientResponse, error) {
	list, err := uc.repo.ListByAdvisor(ctx, legajo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *ToClientResponse(c))
	}
	return out, nil
}

// Get obtiene un cliente del asesor. ErrForbidden si lo captó otro asesor.
func (uc *ClientUseCase) Get(ctx context.Context, advisor int64, id int64) (*dto.ClientResponse, error) {
	c, err := uc.owned(ctx, advisor, id)
	if err != nil {
		return nil, err
	}
	return ToClientResponse(c), nil
}

// Update actualiza los datos de contacto. El DNI no se modifica.
func (uc *ClientUseCase) Update(ctx context.Context, advisor int64, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.owned(ctx, advisor, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.FirstNames) == "" || strings.TrimSpace(in.LastNames) == "" {
		return nil, fmt.Errorf("%w: nombres y apellidos son requeridos", domain.ErrInvalidInput)
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
		}
	}
	c.FirstNames = strings.TrimSpace(in.FirstNames)
	c.LastNames = strings.TrimSpace(in.LastNames)
	c.Email = in.Email
	c.Phone = in.Phone
	c.Address = in.Address
	c.PostalCode = in.PostalCode
	c.City = in.City
	c.Province = in.Province
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return ToClientResponse(c), nil
}

func (uc *ClientUseCase) owned(ctx context.Context, advisor, id int64) (*entity.Client, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.AdvisorLegajo != advisor {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

// ToClientResponse mapea la entidad a la salida.
func ToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:            c.ID,
		DNI:           c.DNI,
		FirstNames:    c.FirstNames,
		LastNames:     c.LastNames,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		PostalCode:    c.PostalCode,
		City:          c.City,
		Province:      c.Province,
		AdvisorLegajo: c.AdvisorLegajo,
		CreatedAt:     c.CreatedAt,
	}
}
