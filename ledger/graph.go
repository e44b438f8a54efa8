package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/store"
)

// Grafo de inserción: editor → libros → stock (por tienda) → ventas.
// Las tiendas se identifican por nombre y se insertan una sola vez aunque
// varios stocks las compartan.

type GraphSale struct {
	Price decimal.Decimal
	Count int64
	Date  *time.Time
}

type GraphStock struct {
	Shop  string
	Count int64
	Sales []GraphSale
}

type GraphBook struct {
	Title  string
	Stocks []GraphStock
}

type GraphPublisher struct {
	Name  string
	Books []GraphBook
}

type Graph struct {
	Publishers []GraphPublisher
}

type ImportStats struct {
	Publishers int
	Books      int
	Shops      int
	Stocks     int
	Sales      int
}

// ImportGraph inserta el grafo completo en una transacción: cualquier
// violación (nombre de editor o tienda duplicado, referencia inválida)
// revierte todos los inserts.
func (r *Repository) ImportGraph(ctx context.Context, g Graph) (ImportStats, error) {
	var st ImportStats

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return st, err
	}
	defer func() { _ = tx.Rollback() }()

	shops := map[string]int64{}
	for _, gp := range g.Publishers {
		res, err := tx.ExecContext(ctx, `INSERT INTO publisher(name) VALUES(?)`, gp.Name)
		if err != nil {
			return ImportStats{}, store.Classify("import publisher", err)
		}
		pubID, err := res.LastInsertId()
		if err != nil {
			return ImportStats{}, err
		}
		st.Publishers++

		for _, gb := range gp.Books {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO book(title,id_publisher) VALUES(?,?)`, gb.Title, pubID)
			if err != nil {
				return ImportStats{}, store.Classify("import book", err)
			}
			bookID, err := res.LastInsertId()
			if err != nil {
				return ImportStats{}, err
			}
			st.Books++

			for _, gs := range gb.Stocks {
				shopID, ok := shops[gs.Shop]
				if !ok {
					res, err := tx.ExecContext(ctx, `INSERT INTO shop(name) VALUES(?)`, gs.Shop)
					if err != nil {
						return ImportStats{}, store.Classify("import shop", err)
					}
					if shopID, err = res.LastInsertId(); err != nil {
						return ImportStats{}, err
					}
					shops[gs.Shop] = shopID
					st.Shops++
				}

				res, err := tx.ExecContext(ctx,
					`INSERT INTO stock(id_book,id_shop,count) VALUES(?,?,?)`,
					bookID, shopID, gs.Count)
				if err != nil {
					return ImportStats{}, store.Classify("import stock", err)
				}
				stockID, err := res.LastInsertId()
				if err != nil {
					return ImportStats{}, err
				}
				st.Stocks++

				for _, sale := range gs.Sales {
					when := time.Now().UTC()
					if sale.Date != nil {
						when = *sale.Date
					}
					if _, err := tx.ExecContext(ctx,
						`INSERT INTO sale(price,date_sale,id_stock,count) VALUES(?,?,?,?)`,
						sale.Price, when, stockID, sale.Count); err != nil {
						return ImportStats{}, store.Classify("import sale", err)
					}
					st.Sales++
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportStats{}, store.Classify("import graph", err)
	}
	return st, nil
}
