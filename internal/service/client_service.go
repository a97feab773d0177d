package service

import (
	"context"
	"fmt"

	"stockbook/internal/model"
	"stockbook/internal/repository"

	"github.com/rs/zerolog"
)

// clientService implements ClientService.
type clientService struct {
	clientRepo repository.ClientRepository
	logger     zerolog.Logger
}

// NewClientService creates a new client service.
func NewClientService(clientRepo repository.ClientRepository, logger zerolog.Logger) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		logger:     logger.With().Str("service", "client").Logger(),
	}
}

// List retrieves all clients.
func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	s.logger.Debug().Int("count", len(clients)).Msg("retrieved clients")

	return clients, nil
}

// Create validates the submitted form and inserts a new client. Only the
// name is required; phone and email may be blank.
func (s *clientService) Create(ctx context.Context, form model.ClientForm) (*model.Client, error) {
	if form.Name == "" {
		return nil, model.NewMissingFieldError("name")
	}

	client := &model.Client{
		Name:  form.Name,
		Phone: form.Phone,
		Email: form.Email,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("name", form.Name).Msg("failed to create client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info().
		Int64("client_id", client.ID).
		Str("name", client.Name).
		Msg("client created")

	return client, nil
}
