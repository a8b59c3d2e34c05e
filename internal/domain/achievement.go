package domain

// UserAchievement is a catalog achievement with one user's progress.
// Progress is a percentage of the requirement.
type UserAchievement struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Icon        *string `db:"icon" json:"icon"`
	Unlocked    bool    `db:"unlocked" json:"unlocked"`
	Progress    int     `json:"progress"`
}

// ProgressPercent converts raw progress into a percentage of requirement.
// The result is not clamped: progress past the requirement reports > 100.
func ProgressPercent(progress, requirement int) int {
	if requirement <= 0 {
		return 0
	}
	return int(float64(progress) / float64(requirement) * 100)
}
