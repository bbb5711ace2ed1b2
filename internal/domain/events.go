package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSectionChanged   EventType = "SectionChanged"
	EventTransitionEnded  EventType = "TransitionEnded"
	EventViewportChanged  EventType = "ViewportChanged"
	EventContactSubmitted EventType = "ContactSubmitted"
	EventContactFailed    EventType = "ContactFailed"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SectionChangedEvent is emitted when a transition to a new page starts
type SectionChangedEvent struct {
	From int
	To   int
	ID   string
}

func (e SectionChangedEvent) Type() EventType { return EventSectionChanged }

// TransitionEndedEvent is emitted when the transition lock is released
type TransitionEndedEvent struct {
	Index int
}

func (e TransitionEndedEvent) Type() EventType { return EventTransitionEnded }

// ViewportChangedEvent is emitted when the mobile/desktop classification flips
type ViewportChangedEvent struct {
	Width    int
	IsMobile bool
}

func (e ViewportChangedEvent) Type() EventType { return EventViewportChanged }

// ContactSubmittedEvent is emitted after the endpoint accepted a message
type ContactSubmittedEvent struct {
	Email string
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// ContactFailedEvent is emitted when validation or delivery fails
type ContactFailedEvent struct {
	Err error
}

func (e ContactFailedEvent) Type() EventType { return EventContactFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Exists bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
