package entities

// Stats is the derived inventory summary. Total always equals Available + Occupied.
type Stats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}
