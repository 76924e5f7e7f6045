package events

import "time"

// Event names and topics published by the absorption pipeline.
const (
	TypeGuidanceAbsorbed  = "GUIDANCE_ABSORBED"
	TopicGuidanceAbsorbed = "guidance.absorbed"
)

// GuidanceAbsorbedPayload is the wire payload for TypeGuidanceAbsorbed.
type GuidanceAbsorbedPayload struct {
	UserId              string   `json:"user_id"`
	SectionTitles       []string `json:"section_titles"`
	ComplianceItemCount int      `json:"compliance_item_count"`
	DocumentNames       []string `json:"document_names"`
}

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "GUIDANCE_ABSORBED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
