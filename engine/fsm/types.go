// Package fsm is a small hierarchical state machine driven by frame deltas.
// Race and encounter phases are built on it.
package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// EventType names an external trigger; EventTick marks automatic transitions
type EventType int

const EventTick EventType = 0

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *systems.Race)
type Machine[T any] struct {
	// Graph Data (Immutable after CompilePaths)
	nodes map[StateID]*Node[T]

	// Runtime State
	activeStateID StateID       // The current leaf node
	timeInState   time.Duration // Time elapsed in current state
	activePath    []StateID     // Stack of active states (Root -> Child -> Leaf)
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node, used for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions sorted by evaluation priority
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventTick = auto-transition
	Guard    GuardFunc[T] // nil = Always true
}

// Action represents a side-effect
type Action[T any] func(ctx T)

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool
