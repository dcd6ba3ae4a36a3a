package domain

import "errors"

var ErrMentorNotFound = errors.New("mentor not found")

// Mentor is a community volunteer attached to a village. Locality is a
// free-form name that should match a Locality in the same village; the
// relationship is advisory and not enforced as a foreign key.
type Mentor struct {
	ID       int64   `json:"id" bson:"_id"`
	Name     string  `json:"name" bson:"name"`
	Contact  string  `json:"contact" bson:"contact"`
	Village  Village `json:"village" bson:"village"`
	Locality string  `json:"locality" bson:"locality"`
}
