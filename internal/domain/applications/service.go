package applications

import (
	"context"
	"errors"
	"time"

	"dogshelter/internal/domain/dogs"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrDogNotFound    = errors.New("dog not found")
	ErrDogUnavailable = errors.New("dog is not available for adoption")
)

// DogLookup resolves the dog an application targets. *dogs.Service
// satisfies it.
type DogLookup interface {
	GetByID(ctx context.Context, id int64) (dogs.Dog, error)
}

type Service struct {
	repo Repository
	dogs DogLookup
	now  func() time.Time
}

func NewService(repo Repository, lookup DogLookup) *Service {
	return &Service{
		repo: repo,
		dogs: lookup,
		now:  time.Now,
	}
}

type SubmitInput struct {
	ApplicantName string
	Email         string
	Phone         string
	Message       string
}

// Submit creates an application for a dog that is AVAILABLE at the time
// of the check. The check and the insert are not atomic: two concurrent
// submissions can both pass the gate. That is accepted — nothing in the
// submission path flips the dog's status, staff pick one winner during
// review ("first approved wins, not first submitted").
func (s *Service) Submit(ctx context.Context, dogID int64, in SubmitInput) (Application, error) {
	d, err := s.dogs.GetByID(ctx, dogID)
	if err != nil {
		if errors.Is(err, dogs.ErrNotFound) {
			return Application{}, ErrDogNotFound
		}
		return Application{}, err
	}
	if d.Status != dogs.StatusAvailable {
		return Application{}, ErrDogUnavailable
	}

	if err := minLength("applicant_name", "Applicant name", in.ApplicantName, 2, false); err != nil {
		return Application{}, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Application{}, err
	}
	phone, err := normalizePhone(in.Phone)
	if err != nil {
		return Application{}, err
	}
	if err := minLength("message", "Message", in.Message, 1, true); err != nil {
		return Application{}, err
	}

	now := s.now()
	a := Application{
		DogID:         dogID,
		DogName:       d.Name,
		ApplicantName: in.ApplicantName,
		Email:         email,
		Phone:         phone,
		Message:       in.Message,
		Status:        StatusSubmitted,
		SubmittedAt:   now,
		UpdatedAt:     now,
	}

	return s.repo.Create(ctx, a)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}

// Review moves an application to a new staff-review state. Approving is
// the one place the referenced dog transitions AVAILABLE -> ADOPTED; the
// repository performs both writes in a single transaction.
func (s *Service) Review(ctx context.Context, id int64, status Status) (Application, error) {
	return s.repo.UpdateStatus(ctx, id, status, s.now())
}
