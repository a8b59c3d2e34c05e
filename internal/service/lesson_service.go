package service

import (
	"context"
	"errors"
	"fmt"

	"language_connect/internal/db"
	"language_connect/internal/domain"
	"language_connect/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LessonService struct {
	db *pgxpool.Pool
}

func NewLessonService(pool *pgxpool.Pool) *LessonService {
	return &LessonService{db: pool}
}

// Complete records (or re-records) a completion and awards the lesson's xp.
// Every call awards xp again; only the completion row is idempotent.
func (s *LessonService) Complete(ctx context.Context, userID, lessonID int64, score int) (*domain.LessonResult, error) {
	var res *domain.LessonResult
	err := db.InTx(ctx, s.db, func(tx pgx.Tx) error {
		lessons := repository.NewLessonRepository(tx)
		users := repository.NewUserRepository(tx)

		reward, err := lessons.GetXPReward(ctx, lessonID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrLessonNotFound
			}
			return fmt.Errorf("get lesson: %w", err)
		}

		level, xp, err := users.LockProgress(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}

		if err := lessons.UpsertCompletion(ctx, userID, lessonID, score); err != nil {
			return fmt.Errorf("upsert completion: %w", err)
		}

		newLevel, totalXP, err := users.ApplyLessonReward(ctx, userID, reward, domain.LevelAfter(level, xp, reward))
		if err != nil {
			return fmt.Errorf("apply reward: %w", err)
		}

		res = &domain.LessonResult{XP: reward, Level: newLevel, TotalXP: totalXP}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
