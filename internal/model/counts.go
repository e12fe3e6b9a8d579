package model

// Counts is the dashboard summary. Routes has no backing table yet and is
// always zero.
type Counts struct {
	Vehicles    int64 `json:"vehicles"`
	WastePoints int64 `json:"wastePoints"`
	Routes      int64 `json:"routes"`
}
