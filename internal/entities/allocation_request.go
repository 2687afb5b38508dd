package entities

// AllocationRequest describes what an incoming vehicle needs. NotifyEmail and
// NotifyPhone are optional receipt destinations.
type AllocationRequest struct {
	NeedsEV     bool   `json:"needsEV"`
	NeedsCover  bool   `json:"needsCover"`
	NotifyEmail string `json:"notifyEmail,omitempty"`
	NotifyPhone string `json:"notifyPhone,omitempty"`
}
