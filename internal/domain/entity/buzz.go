package entity

import (
	"time"

	"github.com/google/uuid"
)

// BuzzStatus is the state of an invite. Transitions only go pending -> accepted or pending -> declined.
type BuzzStatus string

const (
	BuzzStatusPending  BuzzStatus = "pending"
	BuzzStatusAccepted BuzzStatus = "accepted"
	BuzzStatusDeclined BuzzStatus = "declined"
)

// IsTerminal reports whether no further transition is allowed.
func (s BuzzStatus) IsTerminal() bool {
	return s == BuzzStatusAccepted || s == BuzzStatusDeclined
}

// CanTransitionTo reports whether s -> next is a legal transition.
func (s BuzzStatus) CanTransitionTo(next BuzzStatus) bool {
	return s == BuzzStatusPending && next.IsTerminal()
}

// BuzzInvite is a one-shot contact request. Display fields are copied when the buzz is sent
// and do not follow later profile edits.
type BuzzInvite struct {
	ID                 uuid.UUID  `json:"id"`
	SenderID           string     `json:"sender_id"`
	ReceiverID         string     `json:"receiver_id"`
	Status             BuzzStatus `json:"status"`
	SenderName         string     `json:"sender_name"`
	SenderProfilePic   string     `json:"sender_profile_pic"`
	ReceiverName       string     `json:"receiver_name"`
	ReceiverProfilePic string     `json:"receiver_profile_pic"`
	CreatedAt          time.Time  `json:"created_at"`
	RespondedAt        *time.Time `json:"responded_at,omitempty"` // Set once, when the receiver answers.
}
