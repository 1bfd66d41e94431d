package model

import "time"

type Chatroom struct {
	ID        int64     `json:"id,string"`
	OwnerID   int64     `json:"owner_id,string"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
