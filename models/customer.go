package models

import "time"

// Customer represents an account holder known to the fund platform.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type Customer struct {
	// CustomerID is the unique identifier of the customer.
	CustomerID int64 `json:"customer_id"`

	// Name is the display name of the customer.
	Name string `json:"name"`

	// Email is the unique address used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the customer's password.
	// This value MUST be a salted one-way hash, never plaintext, and it
	// is never serialised to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the customer record was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}
