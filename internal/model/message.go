package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Enquiry states
const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// ErrInvalidStatus is returned when a message carries a state outside the enquiry lifecycle
var ErrInvalidStatus = errors.New("invalid message status")

// Message is an enquiry sent to a listing owner. It starts unread and can only move to read.
type Message struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	SenderName    string    `json:"senderName" gorm:"type:varchar(100);not null" bson:"senderName"`
	SenderEmail   string    `json:"senderEmail" gorm:"type:varchar(100);not null" bson:"senderEmail"`
	SenderPhone   string    `json:"senderPhone" gorm:"type:varchar(30)" bson:"senderPhone"`
	Message       string    `json:"message" gorm:"type:text;not null" bson:"message"`
	PropertyID    string    `json:"propertyId" gorm:"type:varchar(36);index" bson:"propertyId"`
	PropertyTitle string    `json:"propertyTitle" gorm:"type:varchar(255)" bson:"propertyTitle"`
	OwnerID       string    `json:"ownerId" gorm:"type:varchar(36);index" bson:"ownerId"`
	UserID        string    `json:"userId" gorm:"type:varchar(36)" bson:"userId"`
	Status        string    `json:"status" gorm:"type:varchar(10);not null;default:'unread';index" bson:"status"`
	Date          time.Time `json:"date" gorm:"index" bson:"date"`
}

// BeforeCreate assigns an ID when the caller did not
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

// NewMessage returns an unread enquiry dated now
func NewMessage(senderName, senderEmail, senderPhone, text string) *Message {
	return &Message{
		ID:          NewID(),
		SenderName:  senderName,
		SenderEmail: senderEmail,
		SenderPhone: senderPhone,
		Message:     text,
		Status:      StatusUnread,
		Date:        time.Now().UTC(),
	}
}

// MarkRead moves the message to read. It reports whether the state changed;
// an already read message is left as is.
func (m *Message) MarkRead() (bool, error) {
	switch m.Status {
	case StatusUnread:
		m.Status = StatusRead
		return true, nil
	case StatusRead:
		return false, nil
	default:
		return false, ErrInvalidStatus
	}
}

// ValidStatus reports whether status is part of the enquiry lifecycle
func ValidStatus(status string) bool {
	return status == StatusUnread || status == StatusRead
}

// AddressedTo reports whether userID is the owner the enquiry was sent to
func (m *Message) AddressedTo(userID string) bool {
	return userID != "" && m.OwnerID == userID
}
