package dto

import "github.com/shopspring/decimal"

func init() {
	// Los precios viajan como número JSON (3.5), no como string ("3.5").
	decimal.MarshalJSONWithoutQuotes = true
}

// Valores por defecto de paginación (skip/limit).
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// PageRequest paginación para listados.
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto y acota los límites.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
