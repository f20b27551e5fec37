package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"StarMap/internal/mission"
)

// ErrNotFound is returned when a user has no stored snapshot.
var ErrNotFound = errors.New("progress: no snapshot for user")

// Store persists one snapshot per user.
type Store interface {
	Load(ctx context.Context, userID string) (Snapshot, error)
	Save(ctx context.Context, userID string, s Snapshot) error
	Delete(ctx context.Context, userID string) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// StoreConfig selects and locates the backing database.
type StoreConfig struct {
	Driver      string
	SQLitePath  string // Empty = in-memory
	PostgresDSN string
}

type progressRecord struct {
	UserID                 string `gorm:"primaryKey;size:128"`
	Level                  int
	CompletedMissions      datatypes.JSON
	Badges                 datatypes.JSON
	CurrentMission         string `gorm:"size:128"`
	Experience             int
	TotalMissionsCompleted int
	UpdatedAt              time.Time
}

func (progressRecord) TableName() string {
	return "progress_snapshots"
}

// GormStore is a Store over SQLite or Postgres.
type GormStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the configured database and migrates the schema.
// Driver "none" returns a nil Store and no error.
func Open(cfg StoreConfig, log zerolog.Logger) (Store, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}

	switch cfg.Driver {
	case DriverNone:
		return nil, nil
	case DriverPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN,
			PreferSimpleProtocol: true,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Info().Msg("Using Postgres progress store")
	case DriverSQLite, "":
		path := cfg.SQLitePath
		if path == "" {
			path = "file::memory:?cache=shared"
		}
		db, err = gorm.Open(sqlite.Open(path), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", path, err)
		}
		log.Info().Str("path", path).Msg("Using SQLite progress store")
	default:
		return nil, fmt.Errorf("progress: unknown store driver %q", cfg.Driver)
	}

	if err := db.AutoMigrate(&progressRecord{}); err != nil {
		return nil, fmt.Errorf("migrate progress schema: %w", err)
	}

	return &GormStore{db: db, log: log}, nil
}

// Load returns the stored snapshot for userID.
func (s *GormStore) Load(ctx context.Context, userID string) (Snapshot, error) {
	var rec progressRecord
	err := s.db.WithContext(ctx).First(&rec, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotFound, userID)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load progress for %s: %w", userID, err)
	}
	return recordToSnapshot(rec)
}

// Save replaces the stored snapshot for userID.
func (s *GormStore) Save(ctx context.Context, userID string, snap Snapshot) error {
	rec, err := snapshotToRecord(userID, snap)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save progress for %s: %w", userID, err)
	}
	s.log.Debug().Str("user", userID).Int("completed", len(snap.CompletedMissions)).Msg("Saved progress snapshot")
	return nil
}

// Delete removes the stored snapshot. Deleting a missing user is not an error.
func (s *GormStore) Delete(ctx context.Context, userID string) error {
	err := s.db.WithContext(ctx).Delete(&progressRecord{}, "user_id = ?", userID).Error
	if err != nil {
		return fmt.Errorf("delete progress for %s: %w", userID, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadOrFresh loads userID's snapshot, falling back to Fresh(defaults) when the
// user has none.
func LoadOrFresh(ctx context.Context, store Store, userID string, defaults Defaults) (Snapshot, error) {
	snap, err := store.Load(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Fresh(defaults), nil
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func toJSON(v any) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

func snapshotToRecord(userID string, snap Snapshot) (progressRecord, error) {
	snap = snap.normalized()
	completed, err := toJSON(snap.CompletedMissions)
	if err != nil {
		return progressRecord{}, fmt.Errorf("encode completed missions: %w", err)
	}
	badges, err := toJSON(snap.Badges)
	if err != nil {
		return progressRecord{}, fmt.Errorf("encode badges: %w", err)
	}
	return progressRecord{
		UserID:                 userID,
		Level:                  snap.Level,
		CompletedMissions:      completed,
		Badges:                 badges,
		CurrentMission:         string(snap.CurrentMission),
		Experience:             snap.Experience,
		TotalMissionsCompleted: snap.TotalMissionsCompleted,
	}, nil
}

func recordToSnapshot(rec progressRecord) (Snapshot, error) {
	snap := Snapshot{
		Level:                  rec.Level,
		CurrentMission:         mission.ID(rec.CurrentMission),
		Experience:             rec.Experience,
		TotalMissionsCompleted: rec.TotalMissionsCompleted,
	}
	if len(rec.CompletedMissions) > 0 {
		if err := json.Unmarshal(rec.CompletedMissions, &snap.CompletedMissions); err != nil {
			return Snapshot{}, fmt.Errorf("decode completed missions for %s: %w", rec.UserID, err)
		}
	}
	if len(rec.Badges) > 0 {
		if err := json.Unmarshal(rec.Badges, &snap.Badges); err != nil {
			return Snapshot{}, fmt.Errorf("decode badges for %s: %w", rec.UserID, err)
		}
	}
	return snap.normalized(), nil
}
