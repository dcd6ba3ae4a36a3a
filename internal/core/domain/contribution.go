package domain

import (
	"errors"
	"time"
)

// PaymentType classifies how a contribution was received.
type PaymentType string

const (
	PaymentCash   PaymentType = "Cash"
	PaymentOnline PaymentType = "Online"
	PaymentOther  PaymentType = "Other"
)

// paymentTypes lists every payment type in display order.
var paymentTypes = []PaymentType{PaymentCash, PaymentOnline, PaymentOther}

// PaymentTypes returns the known payment types in their canonical order.
func PaymentTypes() []PaymentType {
	out := make([]PaymentType, len(paymentTypes))
	copy(out, paymentTypes)
	return out
}

// Valid reports whether p is a known payment type.
func (p PaymentType) Valid() bool {
	switch p {
	case PaymentCash, PaymentOnline, PaymentOther:
		return true
	}
	return false
}

// DateLayout is the calendar-date format used throughout: lexical order
// of date strings equals chronological order.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current UTC calendar date in YYYY-MM-DD form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

var ErrContributionNotFound = errors.New("contribution not found")

// Contribution is a single recorded donation.
type Contribution struct {
	ID           int64       `json:"id" bson:"_id"`
	DonorName    string      `json:"donor_name" bson:"donor_name"`
	DonorContact string      `json:"donor_contact,omitempty" bson:"donor_contact,omitempty"`
	Village      Village     `json:"village" bson:"village"`
	Locality     string      `json:"locality" bson:"locality"`
	Amount       float64     `json:"amount" bson:"amount"`
	PaymentType  PaymentType `json:"payment_type" bson:"payment_type"`
	Date         string      `json:"date" bson:"date"` // YYYY-MM-DD
}
