package scenes

import "github.com/lixenwraith/kickdrive/engine"

// Register installs every scene on the session's director
func Register(s *engine.Session) {
	d := s.Director
	d.Register(engine.SceneTitle, &Title{})
	d.Register(engine.SceneTutorial, &Tutorial{})
	d.Register(engine.SceneVehicleSelect, &VehicleSelect{})
	d.Register(engine.SceneRace, &Race{})
	d.Register(engine.SceneTransform, &Transform{})
	d.Register(engine.SceneHuman, &Human{})
	d.Register(engine.SceneShop, &Shop{})
	d.Register(engine.SceneSheep, &Sheep{})
	d.Register(engine.SceneAntagonist, &Antagonist{})
	d.Register(engine.ScenePostEncounter, &PostEncounter{})
	d.Register(engine.SceneClear, &Clear{})
}

// Start registers the scenes and enters the title
func Start(s *engine.Session) {
	Register(s)
	s.ChangeScene(engine.SceneTitle, engine.Params{})
}
