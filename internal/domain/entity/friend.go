package entity

// Friend is a contact the parcel-machine API allows shipments to be
// shared with. The ID is the upstream contact identifier and is opaque
// to this application.
type Friend struct {
	ID          string
	Name        string
	PhoneNumber string
}
