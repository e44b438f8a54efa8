package main

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/ledger"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// demoGraph: catálogo de prueba (dos editores, tres libros, dos tiendas,
// cuatro ventas).
func demoGraph() ledger.Graph {
	python := decimal.RequireFromString("599.99")
	return ledger.Graph{Publishers: []ledger.GraphPublisher{
		{
			Name: "Эксмо",
			Books: []ledger.GraphBook{
				{
					Title: "Python для начинающих",
					Stocks: []ledger.GraphStock{{
						Shop:  "Букмаркет",
						Count: 10,
						Sales: []ledger.GraphSale{
							{Price: python, Count: 2, Date: day(2023, time.May, 12)},
							{Price: python, Count: 1, Date: day(2023, time.July, 10)},
						},
					}},
				},
				{
					Title: "Продвинутый SQL",
					Stocks: []ledger.GraphStock{{
						Shop:  "Букмаркет",
						Count: 5,
						Sales: []ledger.GraphSale{
							{Price: decimal.RequireFromString("899.50"), Count: 1, Date: day(2023, time.June, 3)},
						},
					}},
				},
			},
		},
		{
			Name: "Дрофа",
			Books: []ledger.GraphBook{{
				Title: "Алгоритмы и структуры данных",
				Stocks: []ledger.GraphStock{{
					Shop:  "Книголюб",
					Count: 7,
					Sales: []ledger.GraphSale{
						{Price: decimal.RequireFromString("750.00"), Count: 3, Date: day(2023, time.July, 8)},
					},
				}},
			}},
		},
	}}
}
