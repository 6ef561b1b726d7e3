// internal/domain/models/chat.go
package models

import "time"

// PresenceStatus is a chat contact's availability.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceOffline PresenceStatus = "offline"
	PresenceAway    PresenceStatus = "away"
)

// Contact is a chat conversation partner in the sidebar list.
type Contact struct {
	Meta        `bson:",inline"`
	Name        string         `bson:"name" json:"name" validate:"required"`
	Avatar      string         `bson:"avatar" json:"avatar" validate:"required"`
	Status      PresenceStatus `bson:"status" json:"status" validate:"required,oneof=online offline away"`
	LastMessage string         `bson:"last_message" json:"lastMessage" validate:"required"`
	Time        string         `bson:"time" json:"time" validate:"required"`
	UnreadCount int            `bson:"unread_count" json:"unreadCount"`
}

// MessageType is the payload kind of a chat message.
type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageFile  MessageType = "file"
)

// Message is one chat message. ContactID is a loose reference to the
// conversation partner; no cascade ties messages to contacts.
type Message struct {
	Meta      `bson:",inline"`
	SenderID  int         `bson:"sender_id" json:"senderId"`
	ContactID int         `bson:"contact_id" json:"contactId"`
	Content   string      `bson:"content" json:"content" validate:"required"`
	Type      MessageType `bson:"type" json:"type" validate:"required,oneof=text image file"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp" validate:"required"`
}
