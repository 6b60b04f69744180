package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopCatalog(t *testing.T) {
	require.Len(t, ShopItems, 6)

	prices := map[ItemID]int{
		ItemShoes: 150, ItemSheep: 200, ItemBigBike: 300,
		ItemBoots: 400, ItemSportsCar: 500, ItemRacingCar: 1000,
	}
	seen := make(map[ItemID]bool)
	for i, it := range ShopItems {
		assert.False(t, seen[it.ID], "duplicate %s", it.ID)
		seen[it.ID] = true
		assert.Equal(t, prices[it.ID], it.Price, it.ID)
		if i > 0 {
			assert.Greater(t, it.Price, ShopItems[i-1].Price, "catalog is sorted by price")
		}
	}

	item, ok := LookupItem(ItemBoots)
	require.True(t, ok)
	assert.Equal(t, CategoryEquip, item.Category)

	_, ok = LookupItem("jetpack")
	assert.False(t, ok)
}

func TestVehicleUnlocks(t *testing.T) {
	for _, id := range UnlockableVehicles {
		item, ok := VehicleItem(id)
		require.True(t, ok, id)
		it, ok := LookupItem(item)
		require.True(t, ok)
		assert.Equal(t, CategoryVehicle, it.Category)
	}
	for _, id := range StarterVehicles {
		_, ok := VehicleItem(id)
		assert.False(t, ok, id)
	}
}

func TestVehicleLookup(t *testing.T) {
	bike, ok := LookupVehicle(VehicleBike)
	require.True(t, ok)
	assert.Greater(t, bike.Speed, MustVehicle(VehicleCar).Speed)
	assert.Less(t, bike.HitWidth, MustVehicle(VehicleCar).HitWidth)

	_, ok = LookupVehicle("hovercraft")
	assert.False(t, ok)
	assert.Equal(t, VehicleCar, MustVehicle("hovercraft").ID)
}

func TestObstacleWeights(t *testing.T) {
	assert.Equal(t, 100.0, TotalObstacleWeight())
	chasers := 0
	for _, o := range Obstacles {
		if o.Chaser {
			chasers++
		}
	}
	assert.Equal(t, 1, chasers)
}

func TestFormAndCategoryNames(t *testing.T) {
	assert.Equal(t, "human", FormHuman.String())
	assert.Equal(t, "sheep", FormSheep.String())
	assert.Equal(t, "🐑", FormSheep.Glyph())
	assert.Equal(t, "vehicle", CategoryVehicle.String())
	assert.Equal(t, "unknown", ItemCategory(9).String())
	assert.Len(t, TutorialTexts, 8)
}
