package domain

// Default clinic configuration
const (
	DefaultFirstSlot       = "8:00 AM"
	DefaultLastSlot        = "4:30 PM"
	DefaultSlotStepMinutes = 30

	DefaultPageSize            = 8
	DefaultUpcomingDays        = 7
	DefaultRecentActivityLimit = 5
)

// DefaultBranches филиалы клиники по умолчанию
var DefaultBranches = []string{"villasis", "carmen"}

// DefaultServices услуги клиники по умолчанию
var DefaultServices = []string{
	"consultation",
	"cleaning",
	"filling",
	"extraction",
	"braces",
	"whitening",
}

// Business validation constants
const (
	MaxNameLength               = 120
	MaxNotesLength              = 500
	MaxMessageLength            = 2000
	MaxCancellationReasonLength = 500
	MinPasswordLength           = 8
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses все статусы бронирования в порядке отображения
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusDone,
}

// FilterAll значение фильтра "без ограничения"
const FilterAll = "all"
