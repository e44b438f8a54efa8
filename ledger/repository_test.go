package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/store"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := NewRepository(db)
	if err := repo.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCreatePublisherDuplicateName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.CreatePublisher(ctx, "Эксмо"); err != nil {
		t.Fatalf("create publisher: %v", err)
	}
	_, err := repo.CreatePublisher(ctx, "Эксмо")
	if !store.IsConstraint(err, store.ConstraintUnique) {
		t.Fatalf("expected unique constraint error, got %v", err)
	}
}

func TestCreateBookMissingPublisher(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.CreateBook(context.Background(), "Без издателя", 42)
	if !store.IsConstraint(err, store.ConstraintForeignKey) {
		t.Fatalf("expected foreign key constraint error, got %v", err)
	}
}

func TestCreateStockNegativeCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	pub, _ := repo.CreatePublisher(ctx, "Эксмо")
	book, _ := repo.CreateBook(ctx, "Python для начинающих", pub)
	shop, _ := repo.CreateShop(ctx, "Букмаркет")

	_, err := repo.CreateStock(ctx, book, shop, -1)
	if !store.IsConstraint(err, store.ConstraintCheck) {
		t.Fatalf("expected check constraint error, got %v", err)
	}
}

func TestCreateSaleDefaultsDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	pub, _ := repo.CreatePublisher(ctx, "Эксмо")
	book, _ := repo.CreateBook(ctx, "Python для начинающих", pub)
	shop, _ := repo.CreateShop(ctx, "Букмаркет")
	stock, _ := repo.CreateStock(ctx, book, shop, 10)

	before := time.Now().UTC().Add(-time.Minute)
	if _, err := repo.CreateSale(ctx, stock, decimal.RequireFromString("599.99"), 1, nil); err != nil {
		t.Fatalf("create sale: %v", err)
	}
	rows, err := repo.SalesByPublisher(ctx, PublisherByID(pub))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Date.Before(before) {
		t.Errorf("defaulted sale date %v is not recent", rows[0].Date)
	}
}

func TestParsePublisherRef(t *testing.T) {
	ref := ParsePublisherRef("42")
	if !ref.ByID || ref.ID != 42 {
		t.Errorf("numeric input parsed as %+v", ref)
	}
	ref = ParsePublisherRef("Эксмо")
	if ref.ByID || ref.Name != "Эксмо" {
		t.Errorf("name input parsed as %+v", ref)
	}
}
