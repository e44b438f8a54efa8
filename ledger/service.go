package ledger

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ahinestrog/bookledger/events"
)

type Events interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

type Service struct {
	repo *Repository
	ev   Events
}

func NewService(repo *Repository, ev Events) *Service {
	return &Service{repo: repo, ev: ev}
}

func (s *Service) publish(ctx context.Context, key string, payload any) {
	if s.ev == nil {
		return
	}
	if err := s.ev.PublishJSON(ctx, key, events.NewEnvelope(key, payload)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("publish failed")
	}
}

func (s *Service) RecordSale(ctx context.Context, stockID int64, price decimal.Decimal, count int64, date *time.Time) (int64, error) {
	id, err := s.repo.CreateSale(ctx, stockID, price, count, date)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, events.RKSaleRecorded, events.SalePayload{
		SaleID:  id,
		StockID: stockID,
		Count:   count,
		Total:   price.Mul(decimal.NewFromInt(count)).StringFixed(2),
	})
	return id, nil
}

func (s *Service) Import(ctx context.Context, g Graph) (ImportStats, error) {
	st, err := s.repo.ImportGraph(ctx, g)
	if err != nil {
		return st, err
	}
	log.Info().
		Int("publishers", st.Publishers).
		Int("books", st.Books).
		Int("sales", st.Sales).
		Msg("catalog imported")
	s.publish(ctx, events.RKCatalogImported, events.ImportPayload{
		Publishers: st.Publishers,
		Books:      st.Books,
		Shops:      st.Shops,
		Stocks:     st.Stocks,
		Sales:      st.Sales,
	})
	return st, nil
}

func (s *Service) SalesByPublisher(ctx context.Context, ref PublisherRef) ([]SaleRow, error) {
	return s.repo.SalesByPublisher(ctx, ref)
}
