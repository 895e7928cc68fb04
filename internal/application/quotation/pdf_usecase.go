package quotation

import (
	"context"
	"fmt"
)

// DownloadPDF genera el PDF de una cotización visible para el actor.
// Devuelve el contenido y el nombre de archivo sugerido.
func (s *Service) DownloadPDF(ctx context.Context, actor Actor, id int64) ([]byte, string, error) {
	// ── 1. Cotización con sus miembros ──
	q, err := s.visible(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}

	// ── 2. Plan (detalles y condiciones generales, aunque se haya dado de baja) ──
	plan, err := s.plans.GetByID(ctx, q.PlanID)
	if err != nil {
		return nil, "", err
	}
	if plan == nil {
		return nil, "", fmt.Errorf("plan %d de la cotización %d no encontrado", q.PlanID, q.ID)
	}

	// ── 3. Render ──
	pdfBytes, err := s.pdf.GenerateQuotationPDF(q, plan)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("cotizacion-%s.pdf", q.Number()), nil
}
