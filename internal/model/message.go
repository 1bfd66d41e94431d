package model

import "time"

type MessageStatus string

const (
	// MessageStatusPending means the message is stored and a reply task is
	// (or is about to be) in flight. Transitions to processed exactly once.
	MessageStatusPending MessageStatus = "pending"

	// MessageStatusProcessed is terminal. Once a response is applied the
	// message never changes again, regardless of task redelivery.
	MessageStatusProcessed MessageStatus = "processed"
)

type Message struct {
	ID         int64         `json:"id,string"`
	ChatroomID int64         `json:"chatroom_id,string"`
	SenderID   int64         `json:"sender_id,string"`
	Text       string        `json:"text"`
	Response   *string       `json:"response,omitempty"`
	Status     MessageStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
