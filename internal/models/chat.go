package models

// ChatRole identifies who sent a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn in an assistant conversation.
type ChatMessage struct {
	Role ChatRole
	Text string
}
