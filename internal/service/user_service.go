package service

import (
	"context"
	"errors"
	"fmt"

	"language_connect/internal/db"
	"language_connect/internal/domain"
	"language_connect/internal/logger"
	"language_connect/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserService handles account creation
type UserService struct {
	db *pgxpool.Pool
}

func NewUserService(pool *pgxpool.Pool) *UserService {
	return &UserService{db: pool}
}

// Register creates the user and a zero-progress row for every catalog
// achievement in one transaction.
func (s *UserService) Register(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	if nu.Avatar == "" {
		nu.Avatar = domain.DefaultAvatar
	}

	var user *domain.User
	err := db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		u, err := repository.NewUserRepository(tx).Create(ctx, nu)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailTaken
			}
			return fmt.Errorf("create user: %w", err)
		}

		seeded, err := repository.NewAchievementRepository(tx).SeedForUser(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("seed achievements: %w", err)
		}
		logger.WithContext(ctx).Debug("user registered", "user_id", u.ID, "achievements", seeded)

		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
