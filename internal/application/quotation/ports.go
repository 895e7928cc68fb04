package quotation

import (
	"context"

	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos de clientes y cotizaciones atados a ella.
type TxRunner interface {
	RunQuotation(ctx context.Context, fn func(clients repository.ClientRepository, quotations repository.QuotationRepository) error) error
}

// PDFGenerator genera el documento PDF de una cotización.
type PDFGenerator interface {
	GenerateQuotationPDF(q *entity.Quotation, plan *entity.Plan) ([]byte, error)
}
