package repository

import (
	"context"

	"language_connect/internal/db"
	"language_connect/internal/domain"
)

type AchievementRepository struct {
	db db.DBTX
}

func NewAchievementRepository(conn db.DBTX) *AchievementRepository {
	return &AchievementRepository{db: conn}
}

// SeedForUser creates a zero-progress row for every catalog achievement.
func (r *AchievementRepository) SeedForUser(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO user_achievements (user_id, achievement_id, progress)
		 SELECT $1, id, 0 FROM achievements`,
		userID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *AchievementRepository) ListForUser(ctx context.Context, userID int64) ([]domain.UserAchievement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.name, a.description, a.icon,
		       ua.progress, ua.unlocked, a.requirement_value
		FROM user_achievements ua
		JOIN achievements a ON ua.achievement_id = a.id
		WHERE ua.user_id = $1
		ORDER BY a.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []domain.UserAchievement{}
	for rows.Next() {
		var (
			a                     domain.UserAchievement
			progress, requirement int
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &progress, &a.Unlocked, &requirement); err != nil {
			return nil, err
		}
		a.Progress = domain.ProgressPercent(progress, requirement)
		res = append(res, a)
	}
	return res, rows.Err()
}
