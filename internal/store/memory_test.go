package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrder_CaseInsensitive(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	for _, o := range SeedOrders() {
		for _, id := range []string{o.ID, strings.ToUpper(o.ID), strings.ToLower(o.ID)} {
			got, err := s.FindOrder(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, got, id)
			assert.Equal(t, o, *got)
		}
	}
}

func TestFindOrder_ByEmail(t *testing.T) {
	s := NewSeededStore()

	got, err := s.FindOrder(context.Background(), "JANE@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ORD-67890", got.ID)
	assert.Nil(t, got.TrackingNumber)
}

func TestFindOrder_Miss(t *testing.T) {
	s := NewSeededStore()

	for _, id := range []string{"ORD-99999", "nobody@example.com", "", "ORD-1234"} {
		got, err := s.FindOrder(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, got, id)
	}
}

func TestFindProduct(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	got, err := s.FindProduct(ctx, "phone case")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PROD-002", got.ID)

	got, err = s.FindProduct(ctx, "HEADPHONES")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PROD-001", got.ID)

	// "e" is in both names; stored order decides
	got, err = s.FindProduct(ctx, "e")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PROD-001", got.ID)
}

func TestFindProduct_Miss(t *testing.T) {
	s := NewSeededStore()

	for _, q := range []string{"laptop", "", "of the Phone Case"} {
		got, err := s.FindProduct(context.Background(), q)
		assert.NoError(t, err)
		assert.Nil(t, got, q)
	}
}

func TestLists_PreserveOrderAndAreCopies(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedProducts(), products)

	products[0].Name = "mutated"
	again, _ := s.ListProducts(ctx)
	assert.Equal(t, "Wireless Headphones", again[0].Name)

	faqs, err := s.ListFAQs(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedFAQs(), faqs)
}

func TestFindOrder_ReturnsCopy(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	got, _ := s.FindOrder(ctx, "ORD-12345")
	got.Items[0] = "mutated"
	*got.TrackingNumber = "mutated"

	again, _ := s.FindOrder(ctx, "ORD-12345")
	assert.Equal(t, "Wireless Headphones", again.Items[0])
	assert.Equal(t, "TRK789456123", *again.TrackingNumber)
}
