// Package gate implements confirmation dialogs that guard destructive actions.
//
// A gate is either typed (the user must enter an exact phrase before the
// action is enabled) or simple (a plain yes/no). Heavier actions get typed
// gates; the two kinds are kept distinct on purpose.
//
// A Gate is owned by a single UI and is not safe for concurrent use.
package gate

import "errors"

var (
	// ErrInvalidConfirmation is returned by Confirm when the typed text does not
	// match the required phrase. The gate stays open.
	ErrInvalidConfirmation = errors.New("confirmation phrase does not match")
	// ErrClosed is returned when an operation needs an open gate.
	ErrClosed = errors.New("confirmation gate is closed")
	// ErrNoPhrase is returned by Type on a simple gate.
	ErrNoPhrase = errors.New("confirmation gate takes no typed phrase")
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

type Kind int

const (
	Simple Kind = iota
	Typed
)

// Snapshot is the declarative view of a gate for the presentation layer.
type Snapshot struct {
	Open       bool   `json:"open"`
	Typed      string `json:"typed"`
	Phrase     string `json:"phrase,omitempty"`
	CanConfirm bool   `json:"can_confirm"`
}

type Gate struct {
	kind   Kind
	phrase string
	state  State
	typed  string
	action func()
}

// NewTyped returns a gate whose action is enabled only when the typed text
// equals phrase exactly.
func NewTyped(phrase string, action func()) *Gate {
	return &Gate{kind: Typed, phrase: phrase, action: action}
}

// NewSimple returns a yes/no gate.
func NewSimple(action func()) *Gate {
	return &Gate{kind: Simple, action: action}
}

func (g *Gate) Kind() Kind { return g.kind }

func (g *Gate) State() State { return g.state }

func (g *Gate) IsOpen() bool { return g.state == Open }

func (g *Gate) Phrase() string { return g.phrase }

func (g *Gate) TypedText() string { return g.typed }

// Open shows the dialog with an empty input. Opening an open gate resets the input.
func (g *Gate) Open() {
	g.state = Open
	g.typed = ""
}

// Type replaces the typed text verbatim.
func (g *Gate) Type(input string) error {
	if g.state != Open {
		return ErrClosed
	}
	if g.kind == Simple {
		return ErrNoPhrase
	}
	g.typed = input
	return nil
}

// Cancel closes the dialog without running the action.
func (g *Gate) Cancel() error {
	if g.state != Open {
		return ErrClosed
	}
	g.close()
	return nil
}

// CanConfirm reports whether Confirm would succeed.
func (g *Gate) CanConfirm() bool {
	if g.state != Open {
		return false
	}
	if g.kind == Simple {
		return true
	}
	return g.typed == g.phrase
}

// Confirm runs the action once and closes the gate. On a phrase mismatch it
// returns ErrInvalidConfirmation and leaves the gate open with its input.
func (g *Gate) Confirm() error {
	if g.state != Open {
		return ErrClosed
	}
	if !g.CanConfirm() {
		return ErrInvalidConfirmation
	}
	if g.action != nil {
		g.action()
	}
	g.close()
	return nil
}

func (g *Gate) Snapshot() Snapshot {
	return Snapshot{
		Open:       g.IsOpen(),
		Typed:      g.typed,
		Phrase:     g.phrase,
		CanConfirm: g.CanConfirm(),
	}
}

func (g *Gate) close() {
	g.state = Closed
	g.typed = ""
}
