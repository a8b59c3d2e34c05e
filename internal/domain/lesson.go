package domain

const (
	// DefaultLessonLanguage is used when lessons are listed without a language.
	DefaultLessonLanguage = "English"
	// DefaultLessonScore is recorded when a completion carries no score.
	DefaultLessonScore = 100
	// WordsPerLesson is added to words_learned on every completion.
	WordsPerLesson = 10
	// XPPerLevel scales the xp threshold of each level.
	XPPerLevel = 100
)

type Lesson struct {
	ID            int64   `db:"id" json:"id"`
	Title         string  `db:"title" json:"title"`
	Description   *string `db:"description" json:"description"`
	XPReward      int     `db:"xp_reward" json:"xp_reward"`
	LevelRequired int     `db:"level_required" json:"level_required"`
	Completed     bool    `db:"completed" json:"completed"`
}

// LessonResult is returned from a lesson completion.
type LessonResult struct {
	XP      int `json:"xp"`
	Level   int `json:"level"`
	TotalXP int `json:"totalXp"`
}

// LevelAfter returns the level after xp is awarded. At most one level is
// gained per award, even if the new total crosses several thresholds.
func LevelAfter(level, xp, reward int) int {
	if xp+reward >= level*XPPerLevel {
		return level + 1
	}
	return level
}
