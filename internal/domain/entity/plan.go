package entity

import "time"

// Plan plan de salud comercializado. La baja es lógica (Active=false).
type Plan struct {
	ID                int64
	Name              string
	Details           string
	GeneralConditions string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
