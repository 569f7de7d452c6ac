// File: intake/session.go
package intake

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"inkhaus/models"
)

const (
	bookingSessionPrefix = "intake:booking:"
	contactSessionPrefix = "intake:contact:"
)

// CreateBookingSession creates a new booking wizard session with default
// form values, assigns it a unique SessionID, and stores it in Redis.
func (s *DefaultIntakeService) CreateBookingSession(ctx context.Context) (*models.BookingSession, error) {
	sess := &models.BookingSession{
		SessionID: uuid.New().String(),
		StepIndex: 0,
		Form:      DefaultBookingForm(),
		Status:    models.StatusIdle,
	}
	if err := s.SaveBookingSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// GetBookingSession retrieves a booking session from Redis.
func (s *DefaultIntakeService) GetBookingSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.cache().Get(ctx, bookingSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &sess, nil
}

// SaveBookingSession stores the session, refreshing its TTL.
func (s *DefaultIntakeService) SaveBookingSession(ctx context.Context, sess *models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.cache().Set(ctx, bookingSessionPrefix+sess.SessionID, data, s.sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// DeleteBookingSession removes the session and its staged temp files.
func (s *DefaultIntakeService) DeleteBookingSession(ctx context.Context, sessionID string) error {
	if sess, err := s.GetBookingSession(ctx, sessionID); err == nil {
		cleanupStagedFiles(sess.Form.StagedFiles)
	}
	if err := s.cache().Del(ctx, bookingSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

// CreateContactSession creates a new contact wizard session.
func (s *DefaultIntakeService) CreateContactSession(ctx context.Context) (*models.ContactSession, error) {
	sess := &models.ContactSession{
		SessionID: uuid.New().String(),
		StepIndex: 0,
		Form:      DefaultContactForm(),
		Status:    models.StatusIdle,
	}
	if err := s.SaveContactSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// GetContactSession retrieves a contact session from Redis.
func (s *DefaultIntakeService) GetContactSession(ctx context.Context, sessionID string) (*models.ContactSession, error) {
	data, err := s.cache().Get(ctx, contactSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("contact session not found or expired: %w", err)
	}
	var sess models.ContactSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse contact session: %w", err)
	}
	return &sess, nil
}

// SaveContactSession stores the session, refreshing its TTL.
func (s *DefaultIntakeService) SaveContactSession(ctx context.Context, sess *models.ContactSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal contact session: %w", err)
	}
	if err := s.cache().Set(ctx, contactSessionPrefix+sess.SessionID, data, s.sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store contact session: %w", err)
	}
	return nil
}

// DeleteContactSession removes the session.
func (s *DefaultIntakeService) DeleteContactSession(ctx context.Context, sessionID string) error {
	if err := s.cache().Del(ctx, contactSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete contact session: %w", err)
	}
	return nil
}
