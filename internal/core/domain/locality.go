package domain

import "errors"

var ErrLocalityNotFound = errors.New("locality not found")

// Locality is a named area belonging to exactly one village.
type Locality struct {
	ID      int64   `json:"id" bson:"_id"`
	Name    string  `json:"name" bson:"name"`
	Village Village `json:"village" bson:"village"`
}
