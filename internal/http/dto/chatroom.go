package dto

import (
	"time"

	"chatdeck.app/backend/internal/model"
)

type CreateChatroomRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=255"`
}

type ChatroomResponse struct {
	ID        int64     `json:"id,string"`
	OwnerID   int64     `json:"owner_id,string"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToChatroomResponse(ch *model.Chatroom) *ChatroomResponse {
	return &ChatroomResponse{
		ID:        ch.ID,
		OwnerID:   ch.OwnerID,
		Name:      ch.Name,
		CreatedAt: ch.CreatedAt,
		UpdatedAt: ch.UpdatedAt,
	}
}

type ChatroomListResponse struct {
	Chatrooms []ChatroomResponse `json:"chatrooms"`
}

func ToChatroomListResponse(chatrooms []model.Chatroom) *ChatroomListResponse {
	out := make([]ChatroomResponse, 0, len(chatrooms))
	for i := range chatrooms {
		out = append(out, *ToChatroomResponse(&chatrooms[i]))
	}
	return &ChatroomListResponse{Chatrooms: out}
}

type ChatroomDetailResponse struct {
	Chatroom *ChatroomResponse `json:"chatroom"`
	Messages []MessageResponse `json:"messages"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"required,min=1,max=8192"`
}

type MessageResponse struct {
	ID         int64     `json:"id,string"`
	ChatroomID int64     `json:"chatroom_id,string"`
	Text       string    `json:"text"`
	Response   *string   `json:"response,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToMessageResponse(m *model.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		ChatroomID: m.ChatroomID,
		Text:       m.Text,
		Response:   m.Response,
		Status:     string(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToMessageResponses(messages []model.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, *ToMessageResponse(&messages[i]))
	}
	return out
}
