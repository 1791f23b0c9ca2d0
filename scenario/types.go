package scenario

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dyntree/dyncon"
)

var (
	// ErrUnknownKey indicates the file contains keys no field decodes.
	ErrUnknownKey = errors.New("scenario: unknown key")

	// ErrBadStep indicates a step with an unknown op or missing fields.
	ErrBadStep = errors.New("scenario: invalid step")

	// ErrExpectation indicates at least one step's expectation did not hold.
	ErrExpectation = errors.New("scenario: expectation failed")
)

// Op names accepted in [[step]] tables.
const (
	OpConnected  = "connected"
	OpAdd        = "add"
	OpDelete     = "delete"
	OpComponents = "components"
)

// Scenario is a decoded scenario file.
type Scenario struct {
	Check   bool       `toml:"check"`
	Shallow bool       `toml:"shallow"`
	Edges   []EdgeSpec `toml:"edge"`
	Steps   []Step     `toml:"step"`
}

// EdgeSpec is one initial edge.
type EdgeSpec struct {
	ID   string `toml:"id"`
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Edge converts s to a dyncon.Edge.
func (s EdgeSpec) Edge() dyncon.Edge {
	return dyncon.Edge{ID: s.ID, From: s.From, To: s.To}
}

// Step is one scripted operation.
type Step struct {
	Op          string `toml:"op"`
	From        string `toml:"from"`
	To          string `toml:"to"`
	ID          string `toml:"id"`
	Expect      *bool  `toml:"expect"`
	ExpectCount *int   `toml:"expect_count"`
}

// String renders the step the way it is echoed to the output.
func (s Step) String() string {
	switch s.Op {
	case OpConnected:
		return fmt.Sprintf("connected %s %s", s.From, s.To)
	case OpAdd:
		return fmt.Sprintf("add %s %s %s", s.From, s.To, s.ID)
	case OpDelete:
		return fmt.Sprintf("delete %s", s.ID)
	default:
		return s.Op
	}
}

func (s Step) validate() error {
	switch s.Op {
	case OpConnected:
		if s.From == "" || s.To == "" {
			return fmt.Errorf("%w: connected needs from and to", ErrBadStep)
		}
	case OpAdd:
		if s.From == "" || s.To == "" || s.ID == "" {
			return fmt.Errorf("%w: add needs from, to and id", ErrBadStep)
		}
	case OpDelete:
		if s.ID == "" {
			return fmt.Errorf("%w: delete needs id", ErrBadStep)
		}
	case OpComponents:
	default:
		return fmt.Errorf("%w: unknown op %q", ErrBadStep, s.Op)
	}
	if s.Expect != nil && s.Op != OpConnected {
		return fmt.Errorf("%w: expect is only valid on connected", ErrBadStep)
	}
	if s.ExpectCount != nil && s.Op != OpComponents {
		return fmt.Errorf("%w: expect_count is only valid on components", ErrBadStep)
	}

	return nil
}

// Failure records one unmet expectation.
type Failure struct {
	Step int
	Desc string
	Want string
	Got  string
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d (%s): want %s, got %s", f.Step, f.Desc, f.Want, f.Got)
}

// Report summarizes a run.
type Report struct {
	// Steps is the number of steps executed.
	Steps int
	// Checked is the number of steps that carried an expectation.
	Checked int
	// Failures lists the unmet expectations in step order.
	Failures []Failure
	// Components is the component count after the last step.
	Components int
}
