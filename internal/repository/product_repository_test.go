package repository

import (
	"context"
	"testing"

	"stockbook/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	t.Run("Create assigns an id", func(t *testing.T) {
		product := &model.Product{
			Name:        "Cable",
			Description: "2m cable",
			Quantity:    10,
			Price:       3.0,
		}

		require.NoError(t, repo.Create(ctx, product))
		assert.Positive(t, product.ID)
	})

	t.Run("GetAll returns the created product exactly once", func(t *testing.T) {
		products, err := repo.GetAll(ctx)
		require.NoError(t, err)

		matches := 0
		for _, p := range products {
			if p.Name == "Cable" && p.Description == "2m cable" && p.Quantity == 10 && p.Price == 3.0 {
				matches++
			}
		}
		assert.Equal(t, 1, matches)
	})

	t.Run("GetByID round-trips all fields", func(t *testing.T) {
		product := &model.Product{Name: "Plug", Quantity: 5, Price: 1.5}
		require.NoError(t, repo.Create(ctx, product))

		got, err := repo.GetByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, product.ID, got.ID)
		assert.Equal(t, "Plug", got.Name)
		assert.Equal(t, "", got.Description)
		assert.Equal(t, 5, got.Quantity)
		assert.Equal(t, 1.5, got.Price)
	})

	t.Run("GetByID returns nil for unknown id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Count counts all products", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestClientRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	logger := zerolog.Nop()
	repo := NewClientRepository(pool, logger)

	t.Run("Create and GetAll", func(t *testing.T) {
		client := &model.Client{Name: "Ana", Phone: "555-0101", Email: "ana@example.com"}
		require.NoError(t, repo.Create(ctx, client))
		assert.Positive(t, client.ID)

		clients, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, *client, clients[0])
	})

	t.Run("GetByID returns nil for unknown id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Optional fields may be blank", func(t *testing.T) {
		client := &model.Client{Name: "Bo"}
		require.NoError(t, repo.Create(ctx, client))

		got, err := repo.GetByID(ctx, client.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "", got.Phone)
		assert.Equal(t, "", got.Email)
	})
}
