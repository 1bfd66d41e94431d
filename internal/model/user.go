package model

import "time"

type User struct {
	ID               int64     `json:"id,string"`
	MobileNumber     string    `json:"mobile_number"`
	Email            *string   `json:"email,omitempty"`
	FullName         *string   `json:"full_name,omitempty"`
	Disabled         bool      `json:"disabled"`
	Confirmed        bool      `json:"confirmed"`
	StripeCustomerID *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
