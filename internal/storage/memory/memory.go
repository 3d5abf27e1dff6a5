// Package memory is the in-process journal used when no database is configured.
package memory

import (
	"sync"
	"time"

	"festRegistration/internal/models"
	"festRegistration/internal/storage"
)

type Storage struct {
	mu            sync.Mutex
	now           func() time.Time
	registrations []models.Registration
	payments      map[int64]models.Payment
	nextPayment   int64
}

func New() *Storage {
	return &Storage{
		now:      time.Now,
		payments: make(map[int64]models.Payment),
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) SaveRegistration(reg models.Registration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg.ID = int64(len(s.registrations) + 1)
	reg.Events = append([]string(nil), reg.Events...)
	reg.CreatedAt = s.now()
	s.registrations = append(s.registrations, reg)

	return reg.ID, nil
}

func (s *Storage) Registrations() []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Registration(nil), s.registrations...)
}

func (s *Storage) SavePayment(p models.Payment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPayment++
	p.ID = s.nextPayment
	p.CreatedAt = s.now()
	s.payments[p.ID] = p

	return p.ID, nil
}

func (s *Storage) GetPayment(id int64) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, storage.ErrPaymentNotFound
	}

	return &p, nil
}

func (s *Storage) UpdatePaymentStatus(id int64, status models.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments[id]
	if !ok {
		return storage.ErrPaymentNotFound
	}
	if p.Status != models.PaymentPending {
		return storage.ErrPaymentNotPending
	}

	p.Status = status
	s.payments[id] = p

	return nil
}

func (s *Storage) ExpirePendingPayments(ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)

	var n int64
	for id, p := range s.payments {
		if p.Status == models.PaymentPending && p.CreatedAt.Before(cutoff) {
			p.Status = models.PaymentFailed
			s.payments[id] = p
			n++
		}
	}

	return n, nil
}
