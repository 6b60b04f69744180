package engine

import (
	"time"

	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/render"
)

// Scene names registered with the director
const (
	SceneTitle         = "title"
	SceneTutorial      = "tutorial"
	SceneVehicleSelect = "vehicleSelect"
	SceneRace          = "race"
	SceneTransform     = "transform"
	SceneHuman         = "human"
	SceneShop          = "shop"
	SceneSheep         = "sheep"
	SceneAntagonist    = "antagonist"
	ScenePostEncounter = "postEncounter"
	SceneClear         = "clear"
)

// Params carries optional scene entry arguments
type Params struct {
	Vehicle content.VehicleID
	Form    content.Form
}

// Scene is one screen of the game; every hook is required
// Scenes reinitialise their transient state in Enter and request transitions through the session
type Scene interface {
	Enter(s *Session, p Params)
	Update(s *Session, dt time.Duration)
	Render(s *Session, surf render.Surface)
	OnPointerDown(s *Session, x, y float64)
	OnPointerUp(s *Session)
	OnKeyDown(s *Session, key string)
	OnKeyUp(s *Session, key string)
}
