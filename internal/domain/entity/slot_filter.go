package entity

// SlotFilter is a domain-level filter for querying the slot catalog.
// Used by repository layer to avoid coupling with delivery DTOs.
type SlotFilter struct {
	StartAt       string // Format: YYYY-MM-DD
	EndAt         string // Format: YYYY-MM-DD
	DoctorName    string // Filter by doctor name (ILIKE)
	SpecialtyName string // Filter by specialty name (ILIKE)
}
