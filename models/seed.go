package models

// SeedReport summarises a seeding run.
type SeedReport struct {
	Interests int `json:"interests"`
	Users     int `json:"users"`
	Failed    int `json:"failed"`
}
