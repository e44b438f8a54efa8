package events

import (
	"time"

	"github.com/google/uuid"
)

// Eventos publicados por la capa de datos
const (
	RKClientCreated   = "directory.client.created"
	RKClientUpdated   = "directory.client.updated"
	RKClientDeleted   = "directory.client.deleted"
	RKSaleRecorded    = "ledger.sale.recorded"
	RKCatalogImported = "ledger.catalog.imported"
)

// Envelope acompaña cada evento con id propio y marca de tiempo.
type Envelope struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

func NewEnvelope(kind string, payload any) Envelope {
	return Envelope{
		ID:      uuid.NewString(),
		Kind:    kind,
		At:      time.Now().UTC(),
		Payload: payload,
	}
}

type ClientPayload struct {
	ClientID int64  `json:"client_id"`
	Email    string `json:"email,omitempty"`
	Phones   int    `json:"phones,omitempty"`
}

type SalePayload struct {
	SaleID  int64  `json:"sale_id"`
	StockID int64  `json:"stock_id"`
	Count   int64  `json:"count"`
	Total   string `json:"total"`
}

type ImportPayload struct {
	Publishers int `json:"publishers"`
	Books      int `json:"books"`
	Shops      int `json:"shops"`
	Stocks     int `json:"stocks"`
	Sales      int `json:"sales"`
}
