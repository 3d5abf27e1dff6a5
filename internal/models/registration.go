package models

import "time"

type Registration struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name" form:"name" validate:"required"`
	Email       string    `json:"email" form:"email" validate:"required,emaillite"`
	Phone       string    `json:"phone" form:"phone" validate:"required,phone10"`
	College     string    `json:"college" form:"college" validate:"required"`
	Events      []string  `json:"events" form:"events" validate:"min=1,catalogevents"`
	TotalAmount int       `json:"total_amount,omitempty" form:"-"`
	Submitted   bool      `json:"submitted,omitempty" form:"-"`
	CreatedAt   time.Time `json:"created_at,omitempty" form:"-"`
}

// Student is the part of a registration that travels with the handoff.
type Student struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	College string `json:"college"`
}
