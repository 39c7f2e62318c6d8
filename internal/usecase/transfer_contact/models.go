package transfer_contact

import "time"

// Request данные, которые оператор дописывает к обращению
type Request struct {
	ContactID string
	Phone     string // если пусто - берется из обращения
	Branch    string
	Service   string
	Date      time.Time
	Time      string
	Notes     *string
}
