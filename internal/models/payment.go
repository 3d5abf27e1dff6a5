package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentConfirmed PaymentStatus = "confirmed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentConfirmed, PaymentFailed:
		return true
	}
	return false
}

type Payment struct {
	ID             int64         `json:"id"`
	Email          string        `json:"email,omitempty"`
	Amount         *int          `json:"amount"`
	TransactionID  string        `json:"transaction_id,omitempty"`
	ScreenshotName string        `json:"screenshot_name,omitempty"`
	Status         PaymentStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}
