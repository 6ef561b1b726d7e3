// internal/domain/models/email.go
package models

// Email is a message in the mail client view. The time field is the
// display string the client shows ("10:45 AM"); ordering uses created_at.
type Email struct {
	Meta          `bson:",inline"`
	From          string `bson:"from" json:"from" validate:"required"`
	Email         string `bson:"email" json:"email" validate:"required,email"`
	Subject       string `bson:"subject" json:"subject" validate:"required"`
	Preview       string `bson:"preview" json:"preview" validate:"required"`
	Time          string `bson:"time" json:"time" validate:"required"`
	IsRead        bool   `bson:"is_read" json:"isRead"`
	IsStarred     bool   `bson:"is_starred" json:"isStarred"`
	HasAttachment bool   `bson:"has_attachment" json:"hasAttachment"`
	Avatar        string `bson:"avatar" json:"avatar" validate:"required"`
	Content       string `bson:"content,omitempty" json:"content,omitempty"`
}

// Folder is a mailbox folder. Count is denormalized and recomputed by the
// folder-count worker for folders whose contents are derivable.
type Folder struct {
	Meta   `bson:",inline"`
	Name   string `bson:"name" json:"name" validate:"required"`
	Icon   string `bson:"icon" json:"icon" validate:"required"`
	Count  int    `bson:"count" json:"count"`
	Active bool   `bson:"active" json:"active"`
}
