package log

import (
	"time"
)

// Event is a single widget event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred, read from the widget's clock.
	Timestamp time.Time `cbor:"1,keyasint"`

	// WidgetID identifies the widget instance (UUID).
	WidgetID string `cbor:"2,keyasint"`

	// Kind of widget that emitted the event.
	Kind Kind `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"`
	Control     *ControlEvent     `cbor:"11,keyasint,omitempty"`
	Tick        *TickEvent        `cbor:"12,keyasint,omitempty"`
	Input       *InputEvent       `cbor:"13,keyasint,omitempty"`
	Finish      *FinishEvent      `cbor:"14,keyasint,omitempty"`
}

// Kind identifies the widget type.
type Kind uint8

const (
	// KindCountdown is the countdown timer.
	KindCountdown Kind = 0
	// KindStopwatch is the stopwatch.
	KindStopwatch Kind = 1
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCountdown:
		return "COUNTDOWN"
	case KindStopwatch:
		return "STOPWATCH"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a tracker state transition.
	CategoryState Category = 0
	// CategoryControl indicates a control action (start, pause, ...).
	CategoryControl Category = 1
	// CategoryTick indicates a display update.
	CategoryTick Category = 2
	// CategoryInput indicates a field edit.
	CategoryInput Category = 3
	// CategoryFinish indicates a countdown reached zero.
	CategoryFinish Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryControl:
		return "CONTROL"
	case CategoryTick:
		return "TICK"
	case CategoryInput:
		return "INPUT"
	case CategoryFinish:
		return "FINISH"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a tracker state transition.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`
}

// ControlEvent captures a control action and whether it took effect.
type ControlEvent struct {
	Action Action `cbor:"1,keyasint"`

	// Accepted is false when the action was a guarded no-op.
	Accepted bool `cbor:"2,keyasint"`
}

// Action is a widget control.
type Action uint8

const (
	ActionStart  Action = 0
	ActionResume Action = 1
	ActionPause  Action = 2
	ActionStop   Action = 3
	ActionReset  Action = 4
	ActionClose  Action = 5
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "START"
	case ActionResume:
		return "RESUME"
	case ActionPause:
		return "PAUSE"
	case ActionStop:
		return "STOP"
	case ActionReset:
		return "RESET"
	case ActionClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}

// TickEvent captures a change of the rendered display.
type TickEvent struct {
	// Value is the tracked duration (remaining or elapsed).
	Value time.Duration `cbor:"1,keyasint"`

	// Display is the rendered text.
	Display string `cbor:"2,keyasint"`
}

// InputEvent captures a field edit and the normalized result.
type InputEvent struct {
	Field Field `cbor:"1,keyasint"`

	// Raw is the value as typed.
	Raw string `cbor:"2,keyasint,omitempty"`

	Hours   int `cbor:"3,keyasint"`
	Minutes int `cbor:"4,keyasint"`
	Seconds int `cbor:"5,keyasint"`
}

// Field identifies a countdown input field.
type Field uint8

const (
	FieldHour   Field = 0
	FieldMinute Field = 1
	FieldSecond Field = 2
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldHour:
		return "HOUR"
	case FieldMinute:
		return "MINUTE"
	case FieldSecond:
		return "SECOND"
	default:
		return "UNKNOWN"
	}
}

// FinishEvent captures a countdown reaching zero.
type FinishEvent struct {
	// Target is the duration the run was started with.
	Target time.Duration `cbor:"1,keyasint"`
}
