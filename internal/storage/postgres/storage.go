package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/mkaryagin/heartbeat/internal/domain/errors"
	"github.com/mkaryagin/heartbeat/internal/domain/model"
	"github.com/mkaryagin/heartbeat/internal/domain/repository"
)

const uniqueViolation = "23505"

// pgxPool is the subset of pgxpool.Pool the storage relies on; tests swap in
// a pgxmock pool through the same seam.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type coupleRepository struct {
	storage *Storage
}

type ledgerRepository struct {
	storage *Storage
}

type rewardRepository struct {
	storage *Storage
}

type baseRewardRepository struct {
	storage *Storage
}

type redemptionRepository struct {
	storage *Storage
}

type statsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Couples() repository.CoupleRepository {
	return &coupleRepository{storage: s}
}

func (s *Storage) Ledger() repository.LedgerRepository {
	return &ledgerRepository{storage: s}
}

func (s *Storage) Rewards() repository.RewardRepository {
	return &rewardRepository{storage: s}
}

func (s *Storage) BaseRewards() repository.BaseRewardRepository {
	return &baseRewardRepository{storage: s}
}

func (s *Storage) Redemptions() repository.RedemptionRepository {
	return &redemptionRepository{storage: s}
}

func (s *Storage) Stats() repository.StatsRepository {
	return &statsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS couples (
            id TEXT PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            name1 TEXT NOT NULL,
            name2 TEXT NOT NULL,
            points BIGINT NOT NULL DEFAULT 0 CHECK (points >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS point_history (
            id BIGSERIAL PRIMARY KEY,
            couple_id TEXT NOT NULL REFERENCES couples(id) ON DELETE CASCADE,
            delta BIGINT NOT NULL,
            reason TEXT NOT NULL,
            balance BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS rewards (
            id TEXT PRIMARY KEY,
            couple_id TEXT NOT NULL REFERENCES couples(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            price BIGINT NOT NULL CHECK (price > 0),
            stock BIGINT NOT NULL DEFAULT 1 CHECK (stock >= 0),
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS base_rewards (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price BIGINT NOT NULL CHECK (price > 0),
            description TEXT NOT NULL DEFAULT '',
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS redemptions (
            id TEXT PRIMARY KEY,
            couple_id TEXT NOT NULL REFERENCES couples(id) ON DELETE CASCADE,
            reward_id TEXT NOT NULL,
            reward_name TEXT NOT NULL,
            points_spent BIGINT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_history_couple ON point_history(couple_id, created_at DESC, id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_couple ON rewards(couple_id, price)`,
		`CREATE INDEX IF NOT EXISTS idx_redemptions_couple ON redemptions(couple_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return s.seedBaseRewards(ctx)
}

// seedBaseRewards fills the reference catalog on first start. An already
// populated table is left untouched so operators can curate it.
func (s *Storage) seedBaseRewards(ctx context.Context) error {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM base_rewards`).Scan(&count); err != nil {
		return fmt.Errorf("seed base rewards: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []model.BaseReward{
		{Name: "movie night", Price: 50, Description: "watch a movie together at the cinema"},
		{Name: "romantic dinner", Price: 100, Description: "dinner at a favorite restaurant"},
		{Name: "weekend trip", Price: 200, Description: "a weekend getaway to a nearby city"},
		{Name: "bouquet of flowers", Price: 30, Description: "surprise flowers"},
		{Name: "home-cooked feast", Price: 40, Description: "a big dinner cooked by hand"},
		{Name: "massage", Price: 60, Description: "a thirty minute massage"},
		{Name: "amusement park day", Price: 150, Description: "a full day at the amusement park"},
		{Name: "wishlist gift", Price: 120, Description: "that one gift from the wishlist"},
		{Name: "hot spring visit", Price: 250, Description: "a relaxing hot spring trip"},
		{Name: "concert tickets", Price: 300, Description: "tickets to a favorite artist"},
	}
	for _, reward := range seed {
		if _, err := s.pool.Exec(ctx,
			`INSERT INTO base_rewards (name, price, description) VALUES ($1, $2, $3)`,
			reward.Name, reward.Price, reward.Description); err != nil {
			return fmt.Errorf("seed base rewards: %w", err)
		}
	}
	return nil
}

// newEntityID produces prefixed identifiers like couple_9f2c... shared across
// the catalog namespace.
func newEntityID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash, is_admin) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username, passwordHash, isAdmin).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Username = username
	u.PasswordHash = passwordHash
	u.IsAdmin = isAdmin
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, password_hash, is_admin, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CoupleRepository implementation ---

func (r *coupleRepository) Create(ctx context.Context, userID int64, name1, name2 string) (*model.Couple, error) {
	const query = `INSERT INTO couples (id, user_id, name1, name2, points) VALUES ($1, $2, $3, $4, 0)
                   RETURNING created_at`
	couple := model.Couple{
		ID:     newEntityID("couple_"),
		UserID: userID,
		Name1:  name1,
		Name2:  name2,
	}
	err := r.storage.pool.QueryRow(ctx, query, couple.ID, userID, name1, name2).Scan(&couple.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &couple, nil
}

func (r *coupleRepository) GetByID(ctx context.Context, coupleID string) (*model.Couple, error) {
	const query = `SELECT id, user_id, name1, name2, points, created_at FROM couples WHERE id=$1`
	return r.scanCouple(r.storage.pool.QueryRow(ctx, query, coupleID))
}

func (r *coupleRepository) GetByUser(ctx context.Context, userID int64) (*model.Couple, error) {
	const query = `SELECT id, user_id, name1, name2, points, created_at FROM couples WHERE user_id=$1`
	return r.scanCouple(r.storage.pool.QueryRow(ctx, query, userID))
}

func (r *coupleRepository) scanCouple(row pgx.Row) (*model.Couple, error) {
	var c model.Couple
	err := row.Scan(&c.ID, &c.UserID, &c.Name1, &c.Name2, &c.Points, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *coupleRepository) List(ctx context.Context) ([]model.Couple, error) {
	const query = `SELECT id, user_id, name1, name2, points, created_at
                   FROM couples ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Couple
	for rows.Next() {
		var c model.Couple
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name1, &c.Name2, &c.Points, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- LedgerRepository implementation ---

// applyDeltaTx mutates the couple balance and appends the matching history
// row inside the caller's transaction. The couple row is locked first, so
// concurrent mutations of one couple serialize.
func (s *Storage) applyDeltaTx(ctx context.Context, tx pgx.Tx, coupleID string, delta int64, reason string) (int64, error) {
	const lockQuery = `SELECT points FROM couples WHERE id=$1 FOR UPDATE`
	var points int64
	if err := tx.QueryRow(ctx, lockQuery, coupleID).Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}

	newBalance := points + delta
	if newBalance < 0 {
		return 0, domainErrors.ErrInsufficientPoints
	}

	const updateQuery = `UPDATE couples SET points=$1 WHERE id=$2`
	if _, err := tx.Exec(ctx, updateQuery, newBalance, coupleID); err != nil {
		return 0, err
	}

	const insertQuery = `INSERT INTO point_history (couple_id, delta, reason, balance) VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(ctx, insertQuery, coupleID, delta, reason, newBalance); err != nil {
		return 0, err
	}

	return newBalance, nil
}

func (r *ledgerRepository) ApplyDelta(ctx context.Context, coupleID string, delta int64, reason string) (int64, error) {
	var newBalance int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		newBalance, err = r.storage.applyDeltaTx(ctx, tx, coupleID, delta, reason)
		return err
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func (r *ledgerRepository) ListByCouple(ctx context.Context, coupleID string, limit int) ([]model.LedgerEntry, error) {
	const query = `SELECT id, couple_id, delta, reason, balance, created_at
                   FROM point_history WHERE couple_id=$1
                   ORDER BY created_at DESC, id DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, coupleID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LedgerEntry
	for rows.Next() {
		var e model.LedgerEntry
		if err := rows.Scan(&e.ID, &e.CoupleID, &e.Delta, &e.Reason, &e.Balance, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ledgerRepository) Balance(ctx context.Context, coupleID string) (int64, error) {
	const query = `SELECT points FROM couples WHERE id=$1`
	var points int64
	err := r.storage.pool.QueryRow(ctx, query, coupleID).Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrNotFound
		}
		return 0, err
	}
	return points, nil
}

// --- RewardRepository implementation ---

func (r *rewardRepository) Create(ctx context.Context, coupleID, name string, price, stock int64, description string) (*model.Reward, error) {
	const query = `INSERT INTO rewards (id, couple_id, name, price, stock, description)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`
	reward := model.Reward{
		ID:          newEntityID("reward_"),
		CoupleID:    coupleID,
		Name:        name,
		Price:       price,
		Stock:       stock,
		Description: description,
	}
	err := r.storage.pool.QueryRow(ctx, query, reward.ID, coupleID, name, price, stock, description).Scan(&reward.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) GetByID(ctx context.Context, rewardID string) (*model.Reward, error) {
	const query = `SELECT id, couple_id, name, price, stock, description, created_at FROM rewards WHERE id=$1`
	var reward model.Reward
	err := r.storage.pool.QueryRow(ctx, query, rewardID).Scan(
		&reward.ID, &reward.CoupleID, &reward.Name, &reward.Price, &reward.Stock, &reward.Description, &reward.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) Update(ctx context.Context, rewardID string, patch model.RewardPatch) (*model.Reward, error) {
	const query = `UPDATE rewards SET
                       name = COALESCE($1, name),
                       price = COALESCE($2, price),
                       stock = COALESCE($3, stock),
                       description = COALESCE($4, description)
                   WHERE id=$5
                   RETURNING id, couple_id, name, price, stock, description, created_at`
	var reward model.Reward
	err := r.storage.pool.QueryRow(ctx, query, patch.Name, patch.Price, patch.Stock, patch.Description, rewardID).Scan(
		&reward.ID, &reward.CoupleID, &reward.Name, &reward.Price, &reward.Stock, &reward.Description, &reward.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) Delete(ctx context.Context, rewardID string) error {
	const query = `DELETE FROM rewards WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, rewardID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *rewardRepository) ListByCouple(ctx context.Context, coupleID string) ([]model.Reward, error) {
	const query = `SELECT id, couple_id, name, price, stock, description, created_at
                   FROM rewards WHERE couple_id=$1
                   ORDER BY price ASC, created_at ASC, id ASC`
	rows, err := r.storage.pool.Query(ctx, query, coupleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Reward
	for rows.Next() {
		var reward model.Reward
		if err := rows.Scan(&reward.ID, &reward.CoupleID, &reward.Name, &reward.Price, &reward.Stock, &reward.Description, &reward.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- BaseRewardRepository implementation ---

func (r *baseRewardRepository) List(ctx context.Context) ([]model.BaseReward, error) {
	const query = `SELECT id, name, price, description FROM base_rewards
                   WHERE active ORDER BY price ASC, id ASC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BaseReward
	for rows.Next() {
		var reward model.BaseReward
		if err := rows.Scan(&reward.ID, &reward.Name, &reward.Price, &reward.Description); err != nil {
			return nil, err
		}
		result = append(result, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- RedemptionRepository implementation ---

// Redeem runs the whole redemption as one transaction. The reward row is
// locked before the couple row; every ledger mutation holds the couple lock,
// so concurrent attempts against the same couple or reward serialize and only
// one can take the last stock unit or the last points.
func (r *redemptionRepository) Redeem(ctx context.Context, coupleID, rewardID string) (*model.Redemption, int64, error) {
	var (
		redemption model.Redemption
		newBalance int64
	)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const rewardQuery = `SELECT name, price, stock FROM rewards WHERE id=$1 AND couple_id=$2 FOR UPDATE`
		var (
			name  string
			price int64
			stock int64
		)
		if err := tx.QueryRow(ctx, rewardQuery, rewardID, coupleID).Scan(&name, &price, &stock); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if stock <= 0 {
			return domainErrors.ErrOutOfStock
		}

		const coupleQuery = `SELECT points FROM couples WHERE id=$1 FOR UPDATE`
		var points int64
		if err := tx.QueryRow(ctx, coupleQuery, coupleID).Scan(&points); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if points < price {
			return domainErrors.ErrInsufficientPoints
		}

		newBalance = points - price
		const updateCouple = `UPDATE couples SET points=$1 WHERE id=$2`
		if _, err := tx.Exec(ctx, updateCouple, newBalance, coupleID); err != nil {
			return err
		}

		const updateStock = `UPDATE rewards SET stock = stock - 1 WHERE id=$1`
		if _, err := tx.Exec(ctx, updateStock, rewardID); err != nil {
			return err
		}

		const insertHistory = `INSERT INTO point_history (couple_id, delta, reason, balance) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insertHistory, coupleID, -price, "redeemed "+rewardID, newBalance); err != nil {
			return err
		}

		redemption = model.Redemption{
			ID:          newEntityID("redeem_"),
			CoupleID:    coupleID,
			RewardID:    rewardID,
			RewardName:  name,
			PointsSpent: price,
		}
		const insertRedemption = `INSERT INTO redemptions (id, couple_id, reward_id, reward_name, points_spent)
                                  VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
		return tx.QueryRow(ctx, insertRedemption,
			redemption.ID, coupleID, rewardID, name, price).Scan(&redemption.CreatedAt)
	})
	if err != nil {
		return nil, 0, err
	}
	return &redemption, newBalance, nil
}

func (r *redemptionRepository) ListByCouple(ctx context.Context, coupleID string, limit int) ([]model.Redemption, error) {
	const query = `SELECT id, couple_id, reward_id, reward_name, points_spent, created_at
                   FROM redemptions WHERE couple_id=$1
                   ORDER BY created_at DESC, id DESC LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, coupleID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRedemptions(rows)
}

func (r *redemptionRepository) ListAll(ctx context.Context, limit int) ([]model.Redemption, error) {
	const query = `SELECT id, couple_id, reward_id, reward_name, points_spent, created_at
                   FROM redemptions ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRedemptions(rows)
}

func scanRedemptions(rows pgx.Rows) ([]model.Redemption, error) {
	var result []model.Redemption
	for rows.Next() {
		var red model.Redemption
		if err := rows.Scan(&red.ID, &red.CoupleID, &red.RewardID, &red.RewardName, &red.PointsSpent, &red.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, red)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- StatsRepository implementation ---

func (r *statsRepository) Collect(ctx context.Context) (*model.Stats, error) {
	const query = `SELECT
                       (SELECT COUNT(*) FROM couples),
                       (SELECT COALESCE(SUM(points), 0) FROM couples),
                       (SELECT COUNT(*) FROM rewards),
                       (SELECT COUNT(*) FROM redemptions)`
	var stats model.Stats
	err := r.storage.pool.QueryRow(ctx, query).Scan(
		&stats.CoupleCount, &stats.TotalPoints, &stats.RewardCount, &stats.RedemptionCount)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
