package service

import (
	"context"

	"blogicum/internal/forms"
	"blogicum/internal/models"
	"blogicum/internal/repository"
)

// UserService owns profile reads and the owner-gated profile edit.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "User", id)
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, asNotFound(err, "User", username)
	}
	return user, nil
}

// UpdateProfile applies the form to the target user. Actors may only edit
// their own profile; anyone else gets an ownership error and no mutation.
func (s *UserService) UpdateProfile(ctx context.Context, actorID, targetID uint, f *forms.ProfileForm) (*models.User, error) {
	user, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.ID != actorID {
		return nil, models.NewOwnershipError("You can only edit your own profile")
	}

	f.Apply(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
