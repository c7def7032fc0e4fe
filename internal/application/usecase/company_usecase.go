package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Horas-api/internal/application/dto"
	"github.com/jhoicas/Horas-api/internal/domain/entity"
	"github.com/jhoicas/Horas-api/internal/domain/repository"
)

// CompanyUseCase lee y actualiza el perfil único de la empresa.
type CompanyUseCase struct {
	repo repository.CompanyRepository
	now  func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, now: utcNow}
}

// Get devuelve el perfil; si aún no existe, un perfil vacío.
func (uc *CompanyUseCase) Get(ctx context.Context) (*dto.CompanyResponse, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &dto.CompanyResponse{}, nil
	}
	return companyToResponse(c), nil
}

// Update crea o actualiza el perfil; solo se sobrescriben los campos enviados.
func (uc *CompanyUseCase) Update(ctx context.Context, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &entity.Company{}
	}
	applyTrimmed(&c.Name, in.Name)
	applyTrimmed(&c.Address, in.Address)
	applyTrimmed(&c.City, in.City)
	applyTrimmed(&c.State, in.State)
	applyTrimmed(&c.PostalCode, in.PostalCode)
	applyTrimmed(&c.Country, in.Country)
	applyTrimmed(&c.Email, in.Email)
	applyTrimmed(&c.Phone, in.Phone)
	applyTrimmed(&c.TaxID, in.TaxID)
	c.UpdatedAt = uc.now()

	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return companyToResponse(c), nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	updated := c.UpdatedAt
	return &dto.CompanyResponse{
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		PostalCode: c.PostalCode,
		Country:    c.Country,
		Email:      c.Email,
		Phone:      c.Phone,
		TaxID:      c.TaxID,
		UpdatedAt:  &updated,
	}
}

// applyTrimmed copia src en dst si src viene en la petición.
func applyTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
