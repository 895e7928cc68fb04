package dto

import "time"

// ClientData datos del cliente que acompañan una cotización.
type ClientData struct {
	DNI        string `json:"dni"`
	FirstNames string `json:"nombres"`
	LastNames  string `json:"apellidos"`
	Email      string `json:"email"`
	Phone      string `json:"telefono"`
}

// UpdateClientRequest modificación de los datos de contacto.
type UpdateClientRequest struct {
	FirstNames string `json:"nombres"`
	LastNames  string `json:"apellidos"`
	Email      string `json:"email"`
	Phone      string `json:"telefono"`
	Address    string `json:"direccion"`
	PostalCode string `json:"codigo_postal"`
	City       string `json:"ciudad"`
	Province   string `json:"provincia"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID            int64     `json:"id"`
	DNI           string    `json:"dni"`
	FirstNames    string    `json:"nombres"`
	LastNames     string    `json:"apellidos"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"telefono,omitempty"`
	Address       string    `json:"direccion,omitempty"`
	PostalCode    string    `json:"codigo_postal,omitempty"`
	City          string    `json:"ciudad,omitempty"`
	Province      string    `json:"provincia,omitempty"`
	AdvisorLegajo int64     `json:"asesor_captador_id"`
	CreatedAt     time.Time `json:"created_at"`
}
