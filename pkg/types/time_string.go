package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60

	// LabelFormat формат отображения слота: "9:30 AM"
	LabelFormat = "3:04 PM"
	// ClockFormat 24-часовой формат: "09:30"
	ClockFormat = "15:04"
)

// ErrInvalidTimeString возвращается при неверном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время дня с точностью до минуты.
// Хранится как число минут от полуночи, отображается как "9:30 AM"
type TimeString struct {
	minutes int
}

// NewTimeString берет время дня из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromMinutes создает время из числа минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: minutes out of range: %d", ErrInvalidTimeString, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// NewTimeStringFromString парсит "9:30 AM", "9:30am", "09:30 PM" или "15:04"
func NewTimeStringFromString(s string) (TimeString, error) {
	normalized := normalize(s)
	if normalized == "" {
		return TimeString{}, ErrInvalidTimeString
	}

	layout := ClockFormat
	if strings.HasSuffix(normalized, " AM") || strings.HasSuffix(normalized, " PM") {
		layout = LabelFormat
	}

	t, err := time.Parse(layout, normalized)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// MustTimeString парсит строку и паникует при ошибке
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Minutes количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes
}

// Seconds количество секунд от полуночи
func (t TimeString) Seconds() int {
	return t.minutes * 60
}

// AddMinutes сдвигает время; выход за пределы суток - ошибка
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + minutes)
}

func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// String возвращает метку слота в формате "9:30 AM"
func (t TimeString) String() string {
	return t.on(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format(LabelFormat)
}

// Clock возвращает время в формате "09:30"
func (t TimeString) Clock() string {
	return t.on(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format(ClockFormat)
}

// On возвращает момент времени в указанный день (в его часовом поясе)
func (t TimeString) On(day time.Time) time.Time {
	return t.on(day)
}

func (t TimeString) on(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.minutes/60, t.minutes%60, 0, 0, day.Location())
}

// MarshalText сериализует в "9:30 AM"
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText парсит метку слота
func (t *TimeString) UnmarshalText(data []byte) error {
	parsed, err := NewTimeStringFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func normalize(s string) string {
	s = strings.ToUpper(strings.Join(strings.Fields(s), " "))
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(s, suffix) && !strings.HasSuffix(s, " "+suffix) {
			s = strings.TrimSuffix(s, suffix) + " " + suffix
		}
	}
	return s
}
