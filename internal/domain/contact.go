package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContactStatus статус обращения
type ContactStatus string

const (
	ContactUnread ContactStatus = "unread"
	ContactRead   ContactStatus = "read"
)

// ParseContactStatus парсит статус обращения
func ParseContactStatus(s string) (ContactStatus, error) {
	status := ContactStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case ContactUnread, ContactRead:
		return status, nil
	default:
		return "", fmt.Errorf("%w: contact status %q", ErrUnknownStatus, s)
	}
}

// Contact represents an inquiry sent through the public contact or guest booking form
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
}

// TransferDetails данные, которые оператор дописывает при переносе обращения в бронирование
type TransferDetails struct {
	Phone   string
	Branch  string
	Service string
	Date    time.Time
	Time    string
	Notes   *string
}

// ToBooking переносит обращение в новое бронирование со статусом pending.
// Само обращение не меняется
func (c *Contact) ToBooking(details TransferDetails) *Booking {
	contactID := c.ID
	phone := strings.TrimSpace(details.Phone)
	if phone == "" && c.Phone != nil {
		phone = *c.Phone
	}

	return &Booking{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     phone,
		Branch:    details.Branch,
		Service:   details.Service,
		Date:      details.Date,
		Time:      details.Time,
		Status:    StatusPending,
		Notes:     details.Notes,
		ContactID: &contactID,
	}
}
