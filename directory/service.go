package directory

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ahinestrog/bookledger/events"
)

type Events interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// Service envuelve el repositorio y publica eventos por cada escritura.
// Con events nil no se publica nada.
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

func (s *Service) CreateClient(ctx context.Context, first, last, email string, phones []string) (int64, error) {
	id, err := s.repo.CreateClient(ctx, first, last, email, phones)
	if err != nil {
		return 0, err
	}
	s.publish(ctx, events.RKClientCreated, events.ClientPayload{ClientID: id, Email: email, Phones: len(phones)})
	return id, nil
}

func (s *Service) AddPhone(ctx context.Context, clientID int64, number string) (int64, error) {
	return s.repo.AddPhone(ctx, clientID, number)
}

func (s *Service) UpdateClient(ctx context.Context, clientID int64, patch ClientPatch) error {
	if err := s.repo.UpdateClient(ctx, clientID, patch); err != nil {
		return err
	}
	if !patch.empty() {
		s.publish(ctx, events.RKClientUpdated, events.ClientPayload{ClientID: clientID})
	}
	return nil
}

func (s *Service) DeletePhone(ctx context.Context, clientID int64, number string) (int64, error) {
	return s.repo.DeletePhone(ctx, clientID, number)
}

func (s *Service) DeleteClient(ctx context.Context, clientID int64) (int64, error) {
	n, err := s.repo.DeleteClient(ctx, clientID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.publish(ctx, events.RKClientDeleted, events.ClientPayload{ClientID: clientID})
	}
	return n, nil
}

func (s *Service) FindClients(ctx context.Context, c FindCriteria) ([]Client, error) {
	return s.repo.FindClients(ctx, c)
}
