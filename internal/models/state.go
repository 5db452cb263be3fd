package models

import "time"

// ConversationStateTTL is how long a flow survives without activity.
const ConversationStateTTL = 2 * time.Hour

// ConversationState is the single active flow record for a phone.
type ConversationState struct {
	Phone       string    `db:"phone" json:"phone"`
	CurrentFlow string    `db:"current_flow" json:"current_flow"`
	CurrentStep string    `db:"current_step" json:"current_step"`
	FlowData    JSONMap   `db:"flow_data" json:"flow_data"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Expired reports whether the state is unreadable at now.
func (s *ConversationState) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
