package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("customer name must not be empty")
	ErrInvalidEmail = errors.New("customer email is invalid")
)

// Customer is the buyer referenced by orders. The orders context only reads it.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer validates and constructs a Customer without an identifier.
func NewCustomer(name, email string) (*Customer, error) {
	customer := &Customer{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	return customer, nil
}

// Validate enforces invariants on the customer.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	at := strings.Index(c.Email, "@")
	if at <= 0 || at == len(c.Email)-1 {
		return ErrInvalidEmail
	}
	return nil
}
