package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/sqlbuild"
	"github.com/ahinestrog/bookledger/store"
)

// SalesByPublisher une editor → libro → stock → tienda → venta y devuelve
// (título, tienda, price×count, fecha) por cada venta del editor. El orden
// por sale.id es estable dentro de una ejecución. Cero filas es
// store.ErrNoData, no un error de ejecución.
func (r *Repository) SalesByPublisher(ctx context.Context, ref PublisherRef) ([]SaleRow, error) {
	where, args := sqlbuild.Build(ref.pred())

	rows, err := r.db.QueryContext(ctx, `
		SELECT b.title, sh.name, s.price, s.count, s.date_sale
		FROM publisher p
		JOIN book b ON b.id_publisher = p.id
		JOIN stock st ON st.id_book = b.id
		JOIN shop sh ON sh.id = st.id_shop
		JOIN sale s ON s.id_stock = st.id
		WHERE `+where+`
		ORDER BY s.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaleRow
	for rows.Next() {
		var row SaleRow
		var price decimal.Decimal
		var count int64
		if err := rows.Scan(&row.Title, &row.Shop, &price, &count, &row.Date); err != nil {
			return nil, err
		}
		// el total se calcula en decimal, nunca en float
		row.Total = price.Mul(decimal.NewFromInt(count))
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, store.ErrNoData
	}
	return out, nil
}
