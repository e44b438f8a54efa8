package ledger

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/store"
)

func demoGraph() Graph {
	price := decimal.RequireFromString("599.99")
	return Graph{Publishers: []GraphPublisher{
		{
			Name: "Эксмо",
			Books: []GraphBook{
				{
					Title: "Python для начинающих",
					Stocks: []GraphStock{{
						Shop:  "Букмаркет",
						Count: 10,
						Sales: []GraphSale{
							{Price: price, Count: 2, Date: date(2023, time.May, 12)},
							{Price: price, Count: 1, Date: date(2023, time.July, 10)},
						},
					}},
				},
				{
					Title: "Продвинутый SQL",
					Stocks: []GraphStock{{
						Shop:  "Букмаркет",
						Count: 5,
						Sales: []GraphSale{
							{Price: decimal.RequireFromString("899.50"), Count: 1, Date: date(2023, time.June, 3)},
						},
					}},
				},
			},
		},
		{
			Name: "Дрофа",
			Books: []GraphBook{{
				Title: "Алгоритмы и структуры данных",
				Stocks: []GraphStock{{
					Shop:  "Книголюб",
					Count: 7,
					Sales: []GraphSale{
						{Price: decimal.RequireFromString("750.00"), Count: 3, Date: date(2023, time.July, 8)},
					},
				}},
			}},
		},
	}}
}

func TestImportGraphStats(t *testing.T) {
	repo := newTestRepo(t)
	st, err := repo.ImportGraph(context.Background(), demoGraph())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := ImportStats{Publishers: 2, Books: 3, Shops: 2, Stocks: 3, Sales: 4}
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

func TestSalesByPublisherName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if _, err := repo.ImportGraph(ctx, demoGraph()); err != nil {
		t.Fatalf("import: %v", err)
	}

	// "Python для начинающих" tiene dos ventas: 599.99×2 y 599.99×1
	rows, err := repo.SalesByPublisher(ctx, PublisherByName("Эксмо"))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}

	first := rows[0]
	if first.Title != "Python для начинающих" || first.Shop != "Букмаркет" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if !first.Total.Equal(decimal.RequireFromString("1199.98")) {
		t.Errorf("first total = %s, want 1199.98", first.Total)
	}
	if !first.Date.Equal(time.Date(2023, time.May, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first date = %v", first.Date)
	}

	second := rows[1]
	if !second.Total.Equal(decimal.RequireFromString("599.99")) {
		t.Errorf("second total = %s, want 599.99", second.Total)
	}
	if !second.Date.Equal(time.Date(2023, time.July, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("second date = %v", second.Date)
	}

	if !rows[2].Total.Equal(decimal.RequireFromString("899.50")) {
		t.Errorf("third total = %s, want 899.50", rows[2].Total)
	}

	// la búsqueda por nombre no distingue mayúsculas y acepta fragmentos
	rows, err = repo.SalesByPublisher(ctx, PublisherByName("эксмо"))
	if err != nil || len(rows) != 3 {
		t.Errorf("case-insensitive lookup failed: %d rows, %v", len(rows), err)
	}
}

func TestSalesByPublisherID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if _, err := repo.ImportGraph(ctx, demoGraph()); err != nil {
		t.Fatalf("import: %v", err)
	}

	var id int64
	if err := repo.db.QueryRowContext(ctx, `SELECT id FROM publisher WHERE name = ?`, "Дрофа").Scan(&id); err != nil {
		t.Fatalf("lookup publisher id: %v", err)
	}
	rows, err := repo.SalesByPublisher(ctx, ParsePublisherRef(strconv.FormatInt(id, 10)))
	if err != nil {
		t.Fatalf("report by id: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Алгоритмы и структуры данных" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if !rows[0].Total.Equal(decimal.RequireFromString("2250.00")) {
		t.Errorf("total = %s, want 2250.00", rows[0].Total)
	}
}

func TestSalesByPublisherNoData(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreatePublisher(ctx, "Без продаж")
	if err != nil {
		t.Fatalf("create publisher: %v", err)
	}
	_, err = repo.SalesByPublisher(ctx, PublisherByID(id))
	if !errors.Is(err, store.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	// editor inexistente también es "sin datos", no un error de ejecución
	_, err = repo.SalesByPublisher(ctx, PublisherByName("нет такого"))
	if !errors.Is(err, store.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestImportGraphDuplicatePublisherRollsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.CreatePublisher(ctx, "Эксмо"); err != nil {
		t.Fatalf("create publisher: %v", err)
	}
	_, err := repo.ImportGraph(ctx, demoGraph())
	if !store.IsConstraint(err, store.ConstraintUnique) {
		t.Fatalf("expected unique constraint error, got %v", err)
	}

	// el grafo entero se revirtió: ni tiendas ni libros quedaron a medias
	var shops, books int
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM shop`).Scan(&shops); err != nil {
		t.Fatalf("count shops: %v", err)
	}
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM book`).Scan(&books); err != nil {
		t.Fatalf("count books: %v", err)
	}
	if shops != 0 || books != 0 {
		t.Errorf("partial import visible: %d shops, %d books", shops, books)
	}
}
