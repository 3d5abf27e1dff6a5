package models

import (
	"net/url"
	"strconv"
)

const AmountPlaceholder = "N/A"

// Handoff carries state from one screen to the next through the query string.
// Every field has a defined zero value; a missing amount stays nil.
type Handoff struct {
	TotalAmount   *int     `json:"total_amount"`
	Email         string   `json:"email,omitempty"`
	Message       string   `json:"message,omitempty"`
	TransactionID string   `json:"transaction_id,omitempty"`
	Student       *Student `json:"student,omitempty"`
}

const (
	keyAmount        = "amount"
	keyEmail         = "email"
	keyMessage       = "message"
	keyTransactionID = "transaction_id"
	keyName          = "name"
	keyPhone         = "phone"
	keyCollege       = "college"
)

func (h Handoff) AmountLabel() string {
	if h.TotalAmount == nil {
		return AmountPlaceholder
	}
	return strconv.Itoa(*h.TotalAmount)
}

func (h Handoff) Values() url.Values {
	v := url.Values{}

	if h.TotalAmount != nil {
		v.Set(keyAmount, strconv.Itoa(*h.TotalAmount))
	}
	setNonEmpty(v, keyEmail, h.Email)
	setNonEmpty(v, keyMessage, h.Message)
	setNonEmpty(v, keyTransactionID, h.TransactionID)

	if h.Student != nil {
		setNonEmpty(v, keyName, h.Student.Name)
		setNonEmpty(v, keyPhone, h.Student.Phone)
		setNonEmpty(v, keyCollege, h.Student.College)
	}

	return v
}

// ParseHandoff never fails: malformed or negative amounts are treated as absent.
func ParseHandoff(v url.Values) Handoff {
	var h Handoff

	if raw := v.Get(keyAmount); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			h.TotalAmount = &n
		}
	}

	h.Email = v.Get(keyEmail)
	h.Message = v.Get(keyMessage)
	h.TransactionID = v.Get(keyTransactionID)

	s := Student{
		Name:    v.Get(keyName),
		Phone:   v.Get(keyPhone),
		College: v.Get(keyCollege),
	}
	if s != (Student{}) {
		h.Student = &s
	}

	return h
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
