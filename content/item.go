package content

// ItemID identifies a shop item
type ItemID string

const (
	ItemShoes     ItemID = "shoes"
	ItemSheep     ItemID = "sheep"
	ItemBigBike   ItemID = "bigBike"
	ItemBoots     ItemID = "boots"
	ItemSportsCar ItemID = "sportsCar"
	ItemRacingCar ItemID = "racingCar"
)

// ItemCategory groups shop items by effect
type ItemCategory int

const (
	CategoryEquip ItemCategory = iota
	CategoryTransform
	CategoryVehicle
)

func (c ItemCategory) String() string {
	switch c {
	case CategoryEquip:
		return "equip"
	case CategoryTransform:
		return "transform"
	case CategoryVehicle:
		return "vehicle"
	default:
		return "unknown"
	}
}

// ShopItem is a purchasable catalog entry
type ShopItem struct {
	ID          ItemID
	Name        string
	Glyph       string
	Price       int
	Description string
	Category    ItemCategory
}

// ShopItems is the catalog in display order
var ShopItems = []ShopItem{
	{ID: ItemShoes, Name: "Running Shoes", Glyph: "👟", Price: 150, Description: "Walk faster", Category: CategoryEquip},
	{ID: ItemSheep, Name: "Sheep Form", Glyph: "🐑", Price: 200, Description: "Become a sheep!", Category: CategoryTransform},
	{ID: ItemBigBike, Name: "Big Bike", Glyph: "🏍️", Price: 300, Description: "Even faster!", Category: CategoryVehicle},
	{ID: ItemBoots, Name: "Super Boots", Glyph: "👢", Price: 400, Description: "Kicks pay double", Category: CategoryEquip},
	{ID: ItemSportsCar, Name: "Sports Car", Glyph: "🚗", Price: 500, Description: "Faster races", Category: CategoryVehicle},
	{ID: ItemRacingCar, Name: "Racing Car", Glyph: "🏎️", Price: 1000, Description: "The fastest!", Category: CategoryVehicle},
}

// LookupItem returns the catalog entry for id
func LookupItem(id ItemID) (ShopItem, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// VehicleItem maps an unlockable vehicle to the item that grants it
func VehicleItem(id VehicleID) (ItemID, bool) {
	switch id {
	case VehicleSportsCar:
		return ItemSportsCar, true
	case VehicleBigBike:
		return ItemBigBike, true
	case VehicleRacingCar:
		return ItemRacingCar, true
	}
	return "", false
}
