package content

// VehicleID identifies a raceable vehicle
type VehicleID string

const (
	VehicleCar       VehicleID = "car"
	VehicleBike      VehicleID = "bike"
	VehicleSportsCar VehicleID = "sportsCar"
	VehicleBigBike   VehicleID = "bigBike"
	VehicleRacingCar VehicleID = "racingCar"
)

// Vehicle describes race speed and hitbox
type Vehicle struct {
	ID        VehicleID
	Name      string
	Glyph     string
	Speed     float64
	HitWidth  float64
	HitHeight float64
}

var vehicles = map[VehicleID]Vehicle{
	VehicleCar:       {ID: VehicleCar, Name: "Car", Glyph: "🚗", Speed: 4, HitWidth: 40, HitHeight: 50},
	VehicleBike:      {ID: VehicleBike, Name: "Bike", Glyph: "🏍️", Speed: 5.5, HitWidth: 28, HitHeight: 45},
	VehicleSportsCar: {ID: VehicleSportsCar, Name: "Sports Car", Glyph: "🏎️", Speed: 6, HitWidth: 40, HitHeight: 50},
	VehicleBigBike:   {ID: VehicleBigBike, Name: "Big Bike", Glyph: "🏍️", Speed: 7, HitWidth: 28, HitHeight: 45},
	VehicleRacingCar: {ID: VehicleRacingCar, Name: "Racing Car", Glyph: "🏎️", Speed: 8, HitWidth: 36, HitHeight: 48},
}

// StarterVehicles are selectable without a purchase
var StarterVehicles = []VehicleID{VehicleCar, VehicleBike}

// UnlockableVehicles are listed in selection order once owned
var UnlockableVehicles = []VehicleID{VehicleSportsCar, VehicleBigBike, VehicleRacingCar}

// LookupVehicle returns the catalog entry for id
func LookupVehicle(id VehicleID) (Vehicle, bool) {
	v, ok := vehicles[id]
	return v, ok
}

// MustVehicle returns the catalog entry for id, falling back to the car
func MustVehicle(id VehicleID) Vehicle {
	if v, ok := vehicles[id]; ok {
		return v
	}
	return vehicles[VehicleCar]
}
