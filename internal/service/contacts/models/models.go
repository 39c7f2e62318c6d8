package models

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
)

// CreateContactRequest обращение с публичной формы
type CreateContactRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Message string  `json:"message" validate:"required,max=2000"`
}

// GuestBookingRequest гостевая заявка на запись. Сохраняется как обращение,
// бронирование по ней создает администратор
type GuestBookingRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"phone" validate:"required,max=32"`
	Branch  string  `json:"branch" validate:"required"`
	Service string  `json:"service" validate:"required"`
	Date    string  `json:"date" validate:"required"` // "2025-06-12"
	Time    string  `json:"time" validate:"required"` // "9:30 AM"
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// UpdateStatusRequest отметка обращения прочитанным/непрочитанным
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ContactResponse ответ с данными обращения
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactListResponse ответ со списком обращений
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// FromDomainContact конвертирует domain модель в DTO
func FromDomainContact(c *domain.Contact) *ContactResponse {
	if c == nil {
		return nil
	}
	return &ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainContactList конвертирует список domain моделей в DTO
func FromDomainContactList(contacts []*domain.Contact) *ContactListResponse {
	result := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		if resp := FromDomainContact(c); resp != nil {
			result = append(result, *resp)
		}
	}
	return &ContactListResponse{Contacts: result}
}
