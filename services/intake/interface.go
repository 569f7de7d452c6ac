package intake

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"inkhaus/models"
	"inkhaus/services/relay"
	"inkhaus/services/storage"
	"inkhaus/utils"
)

// IntakeService drives the booking and contact wizard sessions and their
// submission pipelines.
type IntakeService interface {
	CreateBookingSession(ctx context.Context) (*models.BookingSession, error)
	GetBookingSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SaveBookingSession(ctx context.Context, sess *models.BookingSession) error
	DeleteBookingSession(ctx context.Context, sessionID string) error
	SubmitBooking(ctx context.Context, sess *models.BookingSession) error

	CreateContactSession(ctx context.Context) (*models.ContactSession, error)
	GetContactSession(ctx context.Context, sessionID string) (*models.ContactSession, error)
	SaveContactSession(ctx context.Context, sess *models.ContactSession) error
	DeleteContactSession(ctx context.Context, sessionID string) error
	SubmitContact(ctx context.Context, sess *models.ContactSession) error
}

// DefaultIntakeService is the production IntakeService. Collaborators are
// injected so the pipeline is testable with fakes.
type DefaultIntakeService struct {
	Storage storage.StorageService
	Relay   relay.Sender

	// Relay endpoints. An empty endpoint is a submission-time failure.
	BookingEndpoint string
	ContactEndpoint string

	SessionTTL time.Duration
	Cache      *redis.Client
}

func (s *DefaultIntakeService) cache() *redis.Client {
	if s.Cache == nil {
		return utils.GetSessionCacheClient()
	}
	return s.Cache
}

func (s *DefaultIntakeService) sessionTTL() time.Duration {
	if s.SessionTTL <= 0 {
		return time.Hour
	}
	return s.SessionTTL
}
