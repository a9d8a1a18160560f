package users

import (
	"context"
	"fmt"

	"github.com/udesk/userdesk/internal/common"
)

// Service enforces the business rules on top of a Repository: email
// uniqueness on create and update, existence checks on get and delete.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, user User) (*User, error) {
	taken, err := s.repo.ExistsByEmail(ctx, user.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return nil, common.ErrorEmailTaken
	}

	return s.repo.Create(ctx, &user)
}

func (s *Service) Update(ctx context.Context, id int64, user User) (*User, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// The record's own email does not count as taken.
	if current.Email != user.Email {
		taken, err := s.repo.ExistsByEmail(ctx, user.Email, id)
		if err != nil {
			return nil, fmt.Errorf("checking email: %w", err)
		}
		if taken {
			return nil, common.ErrorEmailTaken
		}
	}

	user.ID = id
	return s.repo.Update(ctx, &user)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
