package repository

import (
	"context"
	"fmt"

	"stockbook/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// clientRepository implements the ClientRepository interface using PostgreSQL.
type clientRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewClientRepository creates a new PostgreSQL-backed client repository.
func NewClientRepository(pool *pgxpool.Pool, logger zerolog.Logger) ClientRepository {
	return &clientRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "client").Logger(),
	}
}

// GetAll retrieves all clients ordered by id.
func (r *clientRepository) GetAll(ctx context.Context) ([]model.Client, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, '')
		FROM clients
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query clients")
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan client row")
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating client rows")
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

// GetByID retrieves a single client by its ID.
func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, '')
		FROM clients
		WHERE id = $1
	`

	var c model.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("client_id", id).Msg("client not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("client_id", id).Msg("failed to query client")
		return nil, fmt.Errorf("failed to query client: %w", err)
	}

	return &c, nil
}

// Create inserts a new client and fills in its assigned ID.
func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	query := `
		INSERT INTO clients (name, phone, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		client.Name, client.Phone, client.Email,
	).Scan(&client.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("name", client.Name).
			Msg("failed to create client")
		return fmt.Errorf("failed to create client: %w", err)
	}

	r.logger.Debug().
		Int64("client_id", client.ID).
		Str("name", client.Name).
		Msg("client created successfully")

	return nil
}

// Count returns the number of clients.
func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count clients")
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}
