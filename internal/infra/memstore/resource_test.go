//go:build unit

package memstore_test

import (
	"testing"

	"resource-booker/internal/infra"
	"resource-booker/internal/infra/memstore"
	"resource-booker/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCatalog(t *testing.T) {
	seeds := []config.ResourceSeed{
		{ID: "room-1", Name: "Sala 1", Type: "room"},
		{ID: "room-2", Name: "Sala 2", Type: "room"},
		{ID: "vehicle-1", Name: "Chevrolet Cobalt", Type: "vehicle", MaxBookingHours: 8},
	}

	t.Run("seeds build the catalog in declaration order", func(t *testing.T) {
		catalog, err := memstore.NewResourceCatalog(seeds)
		require.NoError(t, err)

		all := catalog.List()
		require.Len(t, all, 3)
		assert.Equal(t, "room-1", all[0].ID())
		assert.Equal(t, "room-2", all[1].ID())
		assert.Equal(t, "vehicle-1", all[2].ID())
		assert.True(t, all[2].IsVehicle())
	})

	t.Run("find by id", func(t *testing.T) {
		catalog, err := memstore.NewResourceCatalog(seeds)
		require.NoError(t, err)

		res, err := catalog.FindByID("vehicle-1")
		require.NoError(t, err)
		assert.Equal(t, "Chevrolet Cobalt", res.Name())

		_, err = catalog.FindByID("room-99")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("duplicate seed ids are rejected", func(t *testing.T) {
		_, err := memstore.NewResourceCatalog([]config.ResourceSeed{
			{ID: "room-1", Name: "Sala 1", Type: "room"},
			{ID: "room-1", Name: "Sala 1 again", Type: "room"},
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("invalid seed type surfaces the domain error", func(t *testing.T) {
		_, err := memstore.NewResourceCatalog([]config.ResourceSeed{
			{ID: "desk-1", Name: "Desk", Type: "desk"},
		})
		assert.Error(t, err)
	})
}
