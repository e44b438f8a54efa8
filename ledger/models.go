package ledger

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/sqlbuild"
)

type Publisher struct {
	ID   int64
	Name string
}

type Book struct {
	ID          int64
	Title       string
	PublisherID int64
}

type Shop struct {
	ID   int64
	Name string
}

type Stock struct {
	ID     int64
	BookID int64
	ShopID int64
	Count  int64
}

type Sale struct {
	ID      int64
	Price   decimal.Decimal
	Date    time.Time
	StockID int64
	Count   int64
}

// SaleRow es una fila del reporte: total = price × count.
type SaleRow struct {
	Title string
	Shop  string
	Total decimal.Decimal
	Date  time.Time
}

// PublisherRef identifica a un editor por id exacto o por fragmento de
// nombre (sin distinguir mayúsculas).
type PublisherRef struct {
	ID   int64
	Name string
	ByID bool
}

func PublisherByID(id int64) PublisherRef { return PublisherRef{ID: id, ByID: true} }

func PublisherByName(fragment string) PublisherRef { return PublisherRef{Name: fragment} }

// ParsePublisherRef resuelve la entrada una sola vez: si parsea como entero
// es un id, cualquier otra cosa busca por nombre.
func ParsePublisherRef(input string) PublisherRef {
	if id, err := strconv.ParseInt(input, 10, 64); err == nil {
		return PublisherByID(id)
	}
	return PublisherByName(input)
}

func (ref PublisherRef) pred() sqlbuild.Pred {
	if ref.ByID {
		return sqlbuild.Eq("p.id", ref.ID)
	}
	return sqlbuild.Contains("p.name", ref.Name)
}
