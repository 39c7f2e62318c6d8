package models

// ClinicResponse публичные настройки клиники для формы записи
type ClinicResponse struct {
	Timezone string   `json:"timezone"`
	Branches []string `json:"branches"`
	Services []string `json:"services"`
	SlotGrid []string `json:"slotGrid"` // ["8:00 AM", "8:30 AM", ...]
}
