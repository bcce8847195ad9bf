package list

import "github.com/anniehayho/contactlist/internal/contact"

// State is a point-in-time snapshot of the contact list owned by the
// controller. Contacts are in arrival order.
type State struct {
	Contacts    []contact.Contact
	Loading     bool // true during the initial or refresh fetch
	LoadingMore bool // true during a pagination fetch
	HasMoreData bool // whether further pagination is possible
}

// Event is the interface for all events published by the controller
type Event interface {
	GetType() string
	GetData() interface{}
}

// BaseEvent is the base implementation of Event
type BaseEvent struct {
	Type string
	Data interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() string {
	return e.Type
}

// GetData returns the event data
func (e *BaseEvent) GetData() interface{} {
	return e.Data
}

// Event types
const (
	EventTypeState = "state"
	EventTypeAlert = "alert"
)

// StateEvent carries a snapshot after a state transition
type StateEvent struct {
	BaseEvent
	State State
}

// NewStateEvent creates a new state event
func NewStateEvent(state State) *StateEvent {
	return &StateEvent{
		BaseEvent: BaseEvent{
			Type: EventTypeState,
			Data: state,
		},
		State: state,
	}
}

// AlertEvent carries a transient user-facing notification, either a
// selected contact's name or a fetch error message
type AlertEvent struct {
	BaseEvent
	Message string
}

// NewAlertEvent creates a new alert event
func NewAlertEvent(message string) *AlertEvent {
	return &AlertEvent{
		BaseEvent: BaseEvent{
			Type: EventTypeAlert,
			Data: message,
		},
		Message: message,
	}
}
