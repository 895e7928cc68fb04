package entity

import (
	"strings"
	"time"
)

// Client cliente cotizado. Se identifica por DNI y queda asociado al asesor que lo captó.
type Client struct {
	ID            int64
	DNI           string
	FirstNames    string
	LastNames     string
	Email         string
	Phone         string
	Address       string
	PostalCode    string
	City          string
	Province      string
	AdvisorLegajo int64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName apellidos y nombres.
func (c *Client) FullName() string {
	return strings.TrimSpace(c.LastNames + ", " + c.FirstNames)
}
