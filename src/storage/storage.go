package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

const (
	latestKeyPrefix = "latest_reading:"

	// MaxHistoryHours caps the /api/history window at one week.
	MaxHistoryHours = 168
)

var ErrNoReading = errors.New("no reading available")

// Storage persists tank readings in Postgres and keeps the freshest reading
// per tank in redis. The redis entries are the ReadingCache consumed by the
// API layer; Postgres rows back the history endpoint.
type Storage struct {
	db    *gorm.DB
	redis *redis.Client

	latestTTL time.Duration
}

func NewStorage(opts ...Option) (*Storage, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	db, err := connectToDb(options)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(TankReading{})
	if err != nil {
		return nil, err
	}

	redisClient, err := connectToRedis(options)
	if err != nil {
		return nil, err
	}

	return &Storage{
		db:        db,
		redis:     redisClient,
		latestTTL: options.latestTTL,
	}, nil
}

func (s *Storage) Close() error {
	s.redis.Close()

	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

// SaveReadings appends one history row per reading.
func (s *Storage) SaveReadings(readings []model.Reading) error {
	rows := make([]*TankReading, 0, len(readings))
	for _, reading := range readings {
		rows = append(rows, rowFromReading(reading))
	}

	result := s.db.Create(rows)

	return result.Error
}

// CacheLatest refreshes the per-tank cache entries. Entries expire after a
// few refresh intervals so a dead refresher surfaces as a cache miss instead
// of stale data.
func (s *Storage) CacheLatest(ctx context.Context, readings []model.Reading) error {
	for _, reading := range readings {
		payload, err := json.Marshal(reading)
		if err != nil {
			return err
		}

		err = s.redis.Set(ctx, latestKeyPrefix+string(reading.TankID), payload, s.latestTTL).Err()
		if err != nil {
			return err
		}
	}

	return nil
}

// LatestReading returns the freshest reading for one tank: the cache entry
// when present, the newest history row otherwise.
func (s *Storage) LatestReading(ctx context.Context, id model.TankID) (model.Reading, error) {
	cached, err := s.redis.Get(ctx, latestKeyPrefix+string(id)).Result()
	if err == nil {
		var reading model.Reading
		if err = json.Unmarshal([]byte(cached), &reading); err == nil {
			return reading, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return model.Reading{}, err
	}

	var row TankReading
	result := s.db.Where(TankReadingTable+".tank_id = ?", string(id)).
		Order(TankReadingTable + ".timestamp DESC").
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Reading{}, ErrNoReading
		}

		return model.Reading{}, result.Error
	}

	return row.toReading(), nil
}

func (s *Storage) LatestReadings(ctx context.Context) ([]model.Reading, error) {
	readings := make([]model.Reading, 0, 2)
	for _, id := range []model.TankID{model.TankA, model.TankB} {
		reading, err := s.LatestReading(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNoReading) {
				continue
			}

			return nil, err
		}

		readings = append(readings, reading)
	}

	return readings, nil
}

// History returns the persisted readings of the last N hours, newest first.
func (s *Storage) History(hours int, opts ...ConditionOption) ([]model.Reading, error) {
	if hours > MaxHistoryHours {
		hours = MaxHistoryHours
	}

	var rows []*TankReading
	tx := s.db.Table(TankReadingTable).
		Where(TankReadingTable+".timestamp >= ?", time.Now().Add(-time.Duration(hours)*time.Hour)).
		Order(TankReadingTable + ".timestamp DESC")

	for _, opt := range opts {
		opt(TankReadingTable, "timestamp", tx)
	}

	result := tx.Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	readings := make([]model.Reading, 0, len(rows))
	for _, row := range rows {
		readings = append(readings, row.toReading())
	}

	return readings, nil
}

func connectToDb(options *Options) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		options.dbHost,
		options.dbPort,
		options.dbUser,
		options.dbPassword,
		options.dbName,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func connectToRedis(options *Options) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{Addr: options.redisAddress})
	_, err := redisClient.Ping(context.Background()).Result()
	if err != nil {
		return nil, err
	}

	return redisClient, nil
}
