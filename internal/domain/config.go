package domain

import (
	"strings"
	"time"
)

// Clinic настройки клиники: филиалы, услуги, сетка слотов и часовой пояс
type Clinic struct {
	Branches []string
	Services []string
	SlotGrid SlotGrid
	Location *time.Location
}

// IsKnownBranch checks the branch against the configured set
func (c *Clinic) IsKnownBranch(branch string) bool {
	return containsFold(c.Branches, branch)
}

// IsKnownService checks the service against the configured set
func (c *Clinic) IsKnownService(service string) bool {
	return containsFold(c.Services, service)
}

// Now возвращает текущее время в часовом поясе клиники
func (c *Clinic) Now(now time.Time) time.Time {
	if c.Location == nil {
		return now
	}
	return now.In(c.Location)
}

// NormalizeKey приводит идентификатор филиала/услуги к каноническому виду
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(values []string, v string) bool {
	v = NormalizeKey(v)
	if v == "" {
		return false
	}
	for _, candidate := range values {
		if NormalizeKey(candidate) == v {
			return true
		}
	}
	return false
}
