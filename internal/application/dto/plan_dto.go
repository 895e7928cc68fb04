package dto

import "time"

// PlanRequest alta o modificación de un plan.
type PlanRequest struct {
	Name              string `json:"nombre"`
	Details           string `json:"detalles"`
	GeneralConditions string `json:"condiciones_generales"`
	Active            *bool  `json:"activo"`
}

// PlanResponse salida de un plan.
type PlanResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"nombre"`
	Details           string    `json:"detalles"`
	GeneralConditions string    `json:"condiciones_generales"`
	Active            bool      `json:"activo"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
