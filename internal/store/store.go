// Package store defines the persistence boundary for stations and contact
// submissions along with an in-memory implementation.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Station is an infrastructure site offered to investors.
type Station struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Region      string  `json:"region"`
	Status      string  `json:"status"`
	CapacityKW  float64 `json:"capacityKw"`
	Parcels     int     `json:"parcels"`
	Description string  `json:"description,omitempty"`
}

// InsertStation is a Station without its identity.
type InsertStation struct {
	Name        string  `json:"name" mapstructure:"name"`
	Location    string  `json:"location" mapstructure:"location"`
	Region      string  `json:"region" mapstructure:"region"`
	Status      string  `json:"status" mapstructure:"status"`
	CapacityKW  float64 `json:"capacityKw" mapstructure:"capacityKw"`
	Parcels     int     `json:"parcels" mapstructure:"parcels"`
	Description string  `json:"description,omitempty" mapstructure:"description"`
}

// Validate checks the required station fields.
func (s InsertStation) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(s.Location) == "" {
		return &ValidationError{Field: "location", Reason: "is required"}
	}
	if s.CapacityKW < 0 {
		return &ValidationError{Field: "capacityKw", Reason: "must not be negative"}
	}
	if s.Parcels < 0 {
		return &ValidationError{Field: "parcels", Reason: "must not be negative"}
	}
	return nil
}

// Contact is a submitted contact form.
type Contact struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Company         string    `json:"company,omitempty"`
	InvestmentRange string    `json:"investmentRange,omitempty"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertContact is the payload of the contact form.
type InsertContact struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Company         string `json:"company,omitempty"`
	InvestmentRange string `json:"investmentRange,omitempty"`
	Message         string `json:"message"`
}

// Validate checks the required contact fields and the email address shape.
func (c InsertContact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	if strings.TrimSpace(c.Message) == "" {
		return &ValidationError{Field: "message", Reason: "is required"}
	}
	return nil
}

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Store is the persistence boundary used by the HTTP layer.
type Store interface {
	ListStations(ctx context.Context) ([]Station, error)
	GetStation(ctx context.Context, id int) (Station, error)
	CreateStation(ctx context.Context, station InsertStation) (Station, error)
	CreateContact(ctx context.Context, contact InsertContact) (Contact, error)
	ListContacts(ctx context.Context) ([]Contact, error)
}
