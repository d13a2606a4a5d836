package models

// FeedFilter selects profiles shown to a viewer.
//
// The viewer's own profile and profiles of unverified users are always
// excluded. Zero-valued optional fields impose no constraint.
type FeedFilter struct {
	// ViewerID is the user asking for the feed. Required.
	ViewerID string

	// City matches case-insensitively after trimming. Blank means any city.
	City string

	// AgeFrom and AgeTo are inclusive bounds in full years.
	AgeFrom *int
	AgeTo   *int

	// InterestIDs matches profiles that have at least one of the ids.
	InterestIDs []int64
}
