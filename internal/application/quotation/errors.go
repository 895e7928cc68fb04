package quotation

import (
	"fmt"

	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
)

// PortfolioConflictError el DNI tiene una cotización activa de otro asesor.
type PortfolioConflictError struct {
	Ref *entity.QuotationRef
}

func (e *PortfolioConflictError) Error() string {
	return fmt.Sprintf("el cliente ya fue cotizado por %s (legajo %d) el %s",
		e.Ref.AdvisorName, e.Ref.AdvisorLegajo, e.Ref.CreatedAt.Format("02/01/2006"))
}

func (e *PortfolioConflictError) Unwrap() error { return domain.ErrConflict }
