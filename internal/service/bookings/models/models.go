package models

import (
	"time"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
)

// Request модели

// CancelBookingRequest запрос пациента на отмену своего бронирования
type CancelBookingRequest struct {
	UserID             string `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос администратора на смену статуса
type UpdateStatusRequest struct {
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ListBookingsRequest фильтр списка бронирований
type ListBookingsRequest struct {
	Status string // статус или "all"
	Branch string // филиал или "all"
	Search string
	Page   int
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Branch  string  `json:"branch"`
	Service string  `json:"service"`
	Date    string  `json:"date"` // "2025-06-12"
	Time    string  `json:"time"` // "9:30 AM"
	Status  string  `json:"status"`
	Notes   *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	UserID    *string `json:"userId,omitempty"`
	ContactID *string `json:"contactId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookingPageResponse страница списка бронирований
type BookingPageResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Name:               b.Name,
		Email:              b.Email,
		Phone:              b.Phone,
		Branch:             b.Branch,
		Service:            b.Service,
		Date:               b.DateString(),
		Time:               b.Time,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		UserID:             b.UserID,
		ContactID:          b.ContactID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	return &BookingListResponse{Bookings: toResponses(bookings)}
}

// FromDomainBookingPage конвертирует страницу domain моделей в DTO
func FromDomainBookingPage(page domain.Page[*domain.Booking]) *BookingPageResponse {
	return &BookingPageResponse{
		Bookings:   toResponses(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}

func toResponses(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			result = append(result, *bookingResp)
		}
	}
	return result
}
