package quotation

import (
	"fmt"
	"strings"

	"github.com/jhoicas/sigec-api/internal/application/dto"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

// ToEngineInput convierte el pedido HTTP en la entrada del motor.
// La validación de negocio la hace el motor; acá solo se resuelven los campos opcionales.
func ToEngineInput(req dto.QuotationRequest) (pricing.QuotationInput, []pricing.FamilyMember, error) {
	data := req.Quotation
	in := pricing.QuotationInput{
		PlanID:                     data.PlanID,
		IncomeType:                 pricing.IncomeType(data.IncomeType),
		SocialSecurityContribution: data.SocialSecurityContribution,
		CommercialDiscountPct:      data.CommercialDiscountPct,
		AffinityDiscountPct:        data.AffinityDiscountPct,
		CardDiscountPct:            data.CardDiscountPct,
		MonotributoCategory:        pricing.MonotributoCategory(strings.ToUpper(strings.TrimSpace(data.MonotributoCategory))),
		MonotributoAdherents:       data.MonotributoAdherents,
	}
	if data.IsMarried != nil {
		in.IsMarried = *data.IsMarried
	}

	members := make([]pricing.FamilyMember, 0, len(req.Members))
	for i, m := range req.Members {
		age, ok := m.Age.Int()
		if !ok {
			reason := "debe ser un número entero"
			if !m.Age.Present() {
				reason = "es requerida"
			}
			return in, nil, &pricing.ValidationError{Field: fmt.Sprintf("miembrosData[%d].edad", i), Reason: reason}
		}
		members = append(members, pricing.FamilyMember{Role: pricing.Role(m.Role), Age: age})
	}
	return in, members, nil
}

func toEntityMembers(priced []pricing.FamilyMember) []entity.QuotationMember {
	out := make([]entity.QuotationMember, 0, len(priced))
	for _, m := range priced {
		out = append(out, entity.QuotationMember{Role: m.Role, Age: m.Age, UnitPrice: m.UnitPrice})
	}
	return out
}

func toPreviewResponse(calc *pricing.Calculation) *dto.PreviewResponse {
	members := make([]dto.MemberResponse, 0, len(calc.Members))
	for _, m := range calc.Members {
		members = append(members, dto.MemberResponse{Role: string(m.Role), Age: m.Age, UnitPrice: m.UnitPrice})
	}
	in, res := calc.Input, calc.Result
	return &dto.PreviewResponse{
		Quotation: dto.CalculatedQuotation{
			PlanID:                     in.PlanID,
			IncomeType:                 string(in.IncomeType),
			IsMarried:                  in.IsMarried,
			SocialSecurityContribution: in.SocialSecurityContribution,
			MonotributoCategory:        string(in.MonotributoCategory),
			MonotributoAdherents:       in.MonotributoAdherents,

			BasePrice:                res.BasePrice,
			CommercialDiscountPct:    res.CommercialDiscountPct,
			CommercialDiscountAmount: res.CommercialDiscountAmount,
			AffinityDiscountPct:      res.AffinityDiscountPct,
			AffinityDiscountAmount:   res.AffinityDiscountAmount,
			YoungDiscountPct:         res.YoungDiscountPct,
			YoungDiscountAmount:      res.YoungDiscountAmount,
			CardDiscountPct:          res.CardDiscountPct,
			CardDiscountAmount:       res.CardDiscountAmount,
			TotalDiscountPct:         res.TotalDiscountPct(),

			Subtotal:                res.Subtotal,
			GrossSalaryEstimate:     res.GrossSalaryEstimate,
			EstimatedContribution:   res.EstimatedContribution,
			MonotributoContribution: res.MonotributoContribution,
			VATAmount:               res.VATAmount,
			Total:                   res.Total,
		},
		Members: members,
	}
}

// ToQuotationResponse mapea la cotización completa.
func ToQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	members := make([]dto.MemberResponse, 0, len(q.Members))
	for _, m := range q.Members {
		members = append(members, dto.MemberResponse{Role: string(m.Role), Age: m.Age, UnitPrice: m.UnitPrice})
	}
	return &dto.QuotationResponse{
		ID:            q.ID,
		Number:        q.Number(),
		Status:        q.Status,
		CreatedAt:     q.CreatedAt,
		ExpiresAt:     q.ExpiresAt(),
		CoverageStart: q.CoverageStart(),
		ClientID:      q.ClientID,
		ClientDNI:     q.ClientDNI,
		ClientName:    q.ClientName,
		PlanID:        q.PlanID,
		PlanName:      q.PlanName,
		AdvisorLegajo: q.AdvisorLegajo,
		AdvisorName:   q.AdvisorName,
		Input:         q.Input,
		Result:        q.Result,
		Members:       members,
	}
}

func toSummaryResponse(s *entity.QuotationSummary) dto.QuotationSummaryResponse {
	q := entity.Quotation{ID: s.ID, CreatedAt: s.CreatedAt}
	return dto.QuotationSummaryResponse{
		ID:           s.ID,
		Number:       q.Number(),
		CreatedAt:    s.CreatedAt,
		Status:       s.Status,
		Total:        s.Total,
		ClientDNI:    s.ClientDNI,
		ClientName:   s.ClientName,
		PlanName:     s.PlanName,
		MembersCount: s.MembersCount,
	}
}

// ToRefResponse mapea la referencia a la última cotización de un DNI.
func ToRefResponse(r *entity.QuotationRef) *dto.QuotationRefResponse {
	if r == nil {
		return nil
	}
	return &dto.QuotationRefResponse{
		ID:            r.ID,
		CreatedAt:     r.CreatedAt,
		Status:        r.Status,
		PlanName:      r.PlanName,
		AdvisorLegajo: r.AdvisorLegajo,
		AdvisorName:   r.AdvisorName,
	}
}
