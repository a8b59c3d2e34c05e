package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"language_connect/internal/db"
	"language_connect/internal/domain"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, avatar, native_language, learning_language,
	level, xp, country, is_vip, vip_badge, avatar_frame, coins,
	streak_days, total_messages, words_learned, gifts_received,
	region, city, is_online, last_seen`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{db: conn}
}

func (r *UserRepository) collectOne(ctx context.Context, sql string, args ...any) (*domain.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, constraint(err)
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.User])
	if err != nil {
		return nil, constraint(notFound(err))
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	return r.collectOne(ctx,
		`INSERT INTO users (email, name, avatar, native_language, learning_language, country)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		u.Email, u.Name, u.Avatar, u.NativeLanguage, u.LearningLanguage, u.Country,
	)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.collectOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.collectOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// MarkOnline stamps presence on login and returns the updated row.
func (r *UserRepository) MarkOnline(ctx context.Context, id int64) (*domain.User, error) {
	return r.collectOne(ctx,
		`UPDATE users SET last_seen = CURRENT_TIMESTAMP, is_online = true
		 WHERE id = $1
		 RETURNING `+userColumns,
		id,
	)
}

// Search matches the free-text term against name, languages and country,
// then applies the location and presence filters.
func (r *UserRepository) Search(ctx context.Context, f domain.UserFilter) ([]domain.UserCard, error) {
	var (
		sb   strings.Builder
		args []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	sb.WriteString(`SELECT id, name, avatar, native_language AS language,
		learning_language AS learning, level, country, region, city,
		is_vip, vip_badge, avatar_frame, is_online, last_seen
		FROM users
		WHERE 1=1`)

	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		fmt.Fprintf(&sb, ` AND (name ILIKE %[1]s OR native_language ILIKE %[1]s OR learning_language ILIKE %[1]s OR country ILIKE %[1]s)`, p)
	}
	if f.Region != "" {
		sb.WriteString(` AND region ILIKE ` + arg("%"+f.Region+"%"))
	}
	if f.Country != "" {
		sb.WriteString(` AND country ILIKE ` + arg("%"+f.Country+"%"))
	}
	if f.OnlineOnly {
		sb.WriteString(` AND is_online = true`)
	}
	sb.WriteString(` ORDER BY is_online DESC, last_seen DESC LIMIT ` + arg(f.Limit))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[domain.UserCard])
}

// Update applies a sparse patch. The caller must not pass an empty patch.
func (r *UserRepository) Update(ctx context.Context, id int64, p domain.UserPatch) (*domain.ProfileUpdate, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	set("name", p.Name)
	set("avatar", p.Avatar)
	set("avatar_frame", p.AvatarFrame)
	set("learning_language", p.LearningLanguage)

	if len(sets) == 0 {
		return nil, fmt.Errorf("empty user patch")
	}
	args = append(args, id)

	rows, err := r.db.Query(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+`
		 WHERE id = $`+strconv.Itoa(len(args))+`
		 RETURNING id, name, avatar, avatar_frame, learning_language`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.ProfileUpdate])
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// GetCoins returns user's coins balance
func (r *UserRepository) GetCoins(ctx context.Context, userID int64) (int64, error) {
	var coins int64
	err := r.db.QueryRow(ctx, `SELECT coins FROM users WHERE id = $1`, userID).Scan(&coins)
	return coins, notFound(err)
}

// DebitCoins deducts amount only if the balance covers it.
func (r *UserRepository) DebitCoins(ctx context.Context, userID int64, amount int64) (int64, error) {
	var newBalance int64
	err := r.db.QueryRow(ctx,
		`UPDATE users SET coins = coins - $1 WHERE id = $2 AND coins >= $1 RETURNING coins`,
		amount, userID,
	).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrInsufficientFunds
	}
	return newBalance, err
}

func (r *UserRepository) IncrementGiftsReceived(ctx context.Context, userID int64) error {
	return r.exec1(ctx, `UPDATE users SET gifts_received = gifts_received + 1 WHERE id = $1`, userID)
}

func (r *UserRepository) IncrementTotalMessages(ctx context.Context, userID int64) error {
	return r.exec1(ctx, `UPDATE users SET total_messages = total_messages + 1 WHERE id = $1`, userID)
}

// LockProgress reads level and xp, locking the row until the transaction ends.
func (r *UserRepository) LockProgress(ctx context.Context, userID int64) (level, xp int, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT level, xp FROM users WHERE id = $1 FOR UPDATE`, userID,
	).Scan(&level, &xp)
	return level, xp, notFound(err)
}

// ApplyLessonReward adds xp and learned words and stores the new level.
func (r *UserRepository) ApplyLessonReward(ctx context.Context, userID int64, reward, level int) (int, int, error) {
	var newLevel, totalXP int
	err := r.db.QueryRow(ctx,
		`UPDATE users
		 SET xp = xp + $1, level = $2, words_learned = words_learned + $3
		 WHERE id = $4
		 RETURNING level, xp`,
		reward, level, domain.WordsPerLesson, userID,
	).Scan(&newLevel, &totalXP)
	return newLevel, totalXP, notFound(err)
}

// exec1 runs a single-row update and reports ErrNotFound when nothing matched.
func (r *UserRepository) exec1(ctx context.Context, sql string, args ...any) error {
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
