package domain

import "time"

// User учетная запись пациента или сотрудника клиники
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
