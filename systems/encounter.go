package systems

import (
	"time"

	"github.com/lixenwraith/kickdrive/constants"
	"github.com/lixenwraith/kickdrive/content"
	"github.com/lixenwraith/kickdrive/core"
	"github.com/lixenwraith/kickdrive/engine/fsm"
)

// Encounter phases
const (
	encounterRoot fsm.StateID = iota + 1
	EncounterWarning
	EncounterChase
	EncounterResult
	EncounterDone
)

const eventResolved fsm.EventType = 1

// Outcome is how the pursuit ended
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeCaught
	OutcomeDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaught:
		return "caught"
	case OutcomeDefeated:
		return "defeated"
	default:
		return "pending"
	}
}

// KickResult reports what a kick did during the encounter
type KickResult int

const (
	// KickIgnored happens outside the chase phase
	KickIgnored KickResult = iota
	KickMissed
	KickLanded
)

// Wallet is the slice of the economy the encounter mutates
type Wallet interface {
	LoseAllMoney() int
	RecordAntagonistDefeat(sheepKick bool)
}

// Encounter runs the warning, chase and result phases of a pursuit
type Encounter struct {
	form    content.Form
	wallet  Wallet
	machine *fsm.Machine[*Encounter]

	AntagonistX, AntagonistY float64
	PlayerX, PlayerY         float64

	outcome Outcome
	byKick  bool
	lost    int
}

// NewEncounter starts a pursuit in the warning phase
func NewEncounter(form content.Form, wallet Wallet) *Encounter {
	e := &Encounter{
		form:        form,
		wallet:      wallet,
		AntagonistX: constants.AntagonistStartX,
		AntagonistY: constants.BaseHeight / 2,
		PlayerX:     constants.BaseWidth / 2,
		PlayerY:     constants.BaseHeight * 0.6,
	}

	m := fsm.NewMachine[*Encounter]()
	m.AddState(encounterRoot, "encounter", fsm.StateNone)
	m.AddState(EncounterWarning, "warning", encounterRoot)
	m.AddState(EncounterChase, "chase", encounterRoot).Tick((*Encounter).stepChase)
	m.AddState(EncounterResult, "result", encounterRoot)
	m.AddState(EncounterDone, "done", encounterRoot)

	m.AddTransition(EncounterWarning, fsm.Transition[*Encounter]{
		TargetID: EncounterChase,
		Guard:    m.TimeExceeds(constants.WarningDuration),
	})
	m.AddTransition(EncounterChase, fsm.Transition[*Encounter]{
		TargetID: EncounterResult,
		Guard:    fsm.Not((*Encounter).pending),
	})
	m.AddTransition(EncounterChase, fsm.Transition[*Encounter]{
		TargetID: EncounterResult,
		Event:    eventResolved,
	})
	m.AddTransition(EncounterResult, fsm.Transition[*Encounter]{
		TargetID: EncounterDone,
		Guard:    m.TimeExceeds(constants.ResultDuration),
	})

	if err := m.CompilePaths(); err != nil {
		panic(err)
	}
	if err := m.Init(e, EncounterWarning); err != nil {
		panic(err)
	}
	e.machine = m
	return e
}

// Form is the player's body during the pursuit
func (e *Encounter) Form() content.Form { return e.form }

// Phase returns the active phase
func (e *Encounter) Phase() fsm.StateID { return e.machine.State() }

// PhaseName returns the active phase name for logs
func (e *Encounter) PhaseName() string { return e.machine.StateName() }

// PhaseTime returns time spent in the active phase
func (e *Encounter) PhaseTime() time.Duration { return e.machine.TimeInState() }

// Outcome is pending until the chase resolves
func (e *Encounter) Outcome() Outcome { return e.outcome }

// DefeatedByKick distinguishes a landed kick from surviving the timeout
func (e *Encounter) DefeatedByKick() bool { return e.byKick }

// MoneyLost is the balance taken on capture
func (e *Encounter) MoneyLost() int { return e.lost }

// Done reports the result display has finished
func (e *Encounter) Done() bool { return e.machine.InState(EncounterDone) }

func (e *Encounter) pending() bool { return e.outcome == OutcomePending }

// Gap is the current player-antagonist distance
func (e *Encounter) Gap() float64 {
	return core.Distance(e.PlayerX, e.PlayerY, e.AntagonistX, e.AntagonistY)
}

// Update advances the encounter by dt
func (e *Encounter) Update(dt time.Duration) {
	e.machine.Update(e, dt)
}

// MovePlayer relocates the player instantly during the chase
func (e *Encounter) MovePlayer(x, y float64) {
	if !e.machine.InState(EncounterChase) {
		return
	}
	e.PlayerX = core.ClampF(x, constants.EncounterMinX, constants.EncounterMaxX)
	e.PlayerY = core.ClampF(y, constants.EncounterMinY, constants.EncounterMaxY)
}

// Kick defeats the antagonist when within reach
func (e *Encounter) Kick() KickResult {
	if !e.machine.InState(EncounterChase) || !e.pending() {
		return KickIgnored
	}
	if e.Gap() >= constants.KickReach {
		return KickMissed
	}
	e.resolveDefeat(true)
	e.machine.HandleEvent(e, eventResolved)
	return KickLanded
}

func (e *Encounter) stepChase() {
	e.AntagonistX = core.Ease(e.AntagonistX, e.PlayerX, constants.AntagonistEase)
	e.AntagonistY = core.Ease(e.AntagonistY, e.PlayerY, constants.AntagonistEase)

	if e.Gap() < constants.CatchDistance {
		e.outcome = OutcomeCaught
		e.lost = e.wallet.LoseAllMoney()
		return
	}
	if e.PhaseTime() > constants.ChaseTimeout {
		e.resolveDefeat(false)
	}
}

func (e *Encounter) resolveDefeat(byKick bool) {
	e.outcome = OutcomeDefeated
	e.byKick = byKick
	e.wallet.RecordAntagonistDefeat(byKick && e.form == content.FormSheep)
}
