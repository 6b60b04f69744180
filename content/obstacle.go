package content

// ObstacleKind is a race traffic archetype
type ObstacleKind struct {
	Name        string
	Glyph       string
	Width       float64
	Height      float64
	BaseSpeed   float64
	SpawnWeight float64
	// Chaser obstacles steer toward the player's x position
	Chaser bool
}

// Obstacles is the weighted traffic catalog
var Obstacles = []ObstacleKind{
	{Name: "suv", Glyph: "🚙", Width: 36, Height: 46, BaseSpeed: 2.0, SpawnWeight: 40},
	{Name: "taxi", Glyph: "🚕", Width: 36, Height: 46, BaseSpeed: 2.5, SpawnWeight: 30},
	{Name: "bus", Glyph: "🚌", Width: 46, Height: 66, BaseSpeed: 1.5, SpawnWeight: 15},
	{Name: "truck", Glyph: "🚛", Width: 50, Height: 70, BaseSpeed: 1.2, SpawnWeight: 10},
	{Name: "police", Glyph: "🚓", Width: 36, Height: 46, BaseSpeed: 3.5, SpawnWeight: 5, Chaser: true},
}

// TotalObstacleWeight sums SpawnWeight across the catalog
func TotalObstacleWeight() float64 {
	var total float64
	for _, o := range Obstacles {
		total += o.SpawnWeight
	}
	return total
}
