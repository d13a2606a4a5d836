package service

// ConnectionServiceWrapper decorates a ConnectionService, e.g. with validation.
type ConnectionServiceWrapper interface {
	Wrap(ConnectionService) ConnectionService
}

// ProfileServiceWrapper decorates a ProfileService, e.g. with validation.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}
