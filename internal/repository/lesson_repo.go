package repository

import (
	"context"

	"language_connect/internal/db"
	"language_connect/internal/domain"

	"github.com/jackc/pgx/v5"
)

type LessonRepository struct {
	db db.DBTX
}

func NewLessonRepository(conn db.DBTX) *LessonRepository {
	return &LessonRepository{db: conn}
}

// ListForUser returns the lessons of a language with the user's completion flag.
func (r *LessonRepository) ListForUser(ctx context.Context, language string, userID int64) ([]domain.Lesson, error) {
	rows, err := r.db.Query(ctx, `
		SELECT l.id, l.title, l.description, l.xp_reward, l.level_required,
		       COALESCE(ul.completed, FALSE) AS completed
		FROM lessons l
		LEFT JOIN user_lessons ul ON l.id = ul.lesson_id AND ul.user_id = $1
		WHERE l.language = $2
		ORDER BY l.level_required, l.id`,
		userID, language,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.Lesson])
}

func (r *LessonRepository) GetXPReward(ctx context.Context, lessonID int64) (int, error) {
	var reward int
	err := r.db.QueryRow(ctx, `SELECT xp_reward FROM lessons WHERE id = $1`, lessonID).Scan(&reward)
	return reward, notFound(err)
}

// UpsertCompletion marks the lesson completed, overwriting score and time
// of any earlier completion.
func (r *LessonRepository) UpsertCompletion(ctx context.Context, userID, lessonID int64, score int) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_lessons (user_id, lesson_id, completed, score, completed_at)
		 VALUES ($1, $2, TRUE, $3, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, lesson_id)
		 DO UPDATE SET completed = TRUE, score = EXCLUDED.score, completed_at = CURRENT_TIMESTAMP`,
		userID, lessonID, score,
	)
	return constraint(err)
}
