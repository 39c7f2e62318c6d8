package list_bookings

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-DentalBooking/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров: status, branch, q, page
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		Status: strings.ToLower(strings.TrimSpace(query.Get("status"))),
		Branch: strings.TrimSpace(query.Get("branch")),
		Search: query.Get("q"),
		Page:   1,
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}

	return req, nil
}
