package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/asadas-tsadiglo/tank-telemetry/src/model"
)

func ppm(v float64) *float64 {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func testReadings(ts time.Time) []model.Reading {
	return []model.Reading{
		{
			TankID:            model.TankA,
			TankName:          "Cisterna",
			Timestamp:         ts,
			WaterLevelCm:      120.5,
			WaterLevelPercent: 66.9,
			WaterVolumeM3:     33.47,
			PumpStatus:        true,
			Status:            model.StatusNormal,
			SensorStatus:      "active",
			DataSource:        "simulation",
		},
		{
			TankID:            model.TankB,
			TankName:          "Tanque 150",
			Timestamp:         ts,
			WaterLevelCm:      200.2,
			WaterLevelPercent: 66.7,
			WaterVolumeM3:     100.1,
			PumpStatus:        false,
			ChlorinePpm:       ppm(1.2),
			ChlorineStatus:    model.ChlorineNormal,
			ChlorinatorStatus: boolPtr(false),
			Status:            model.StatusNormal,
			SensorStatus:      "active",
			DataSource:        "simulation",
		},
	}
}

func TestStorageTestSuite(t *testing.T) {
	if os.Getenv("POSTGRES_HOST") == "" {
		t.Skip("POSTGRES_HOST is not set, skipping storage integration tests")
	}

	suite.Run(t, new(StorageTestSuite))
}

type StorageTestSuite struct {
	suite.Suite
	storage *Storage
}

func (s *StorageTestSuite) SetupSuite() {
	storage, err := connectToTestDb()
	s.Require().NoError(err, err)

	s.storage = storage
}

func (s *StorageTestSuite) TearDownSuite() {
	s.storage.db.Migrator().DropTable(&TankReading{})

	err := s.storage.Close()
	s.NoError(err, err)
}

func (s *StorageTestSuite) TearDownTest() {
	s.storage.db.Unscoped().Where("1 = 1").Delete(&TankReading{})
	s.storage.redis.FlushDB(context.Background())
}

func (s *StorageTestSuite) TestSaveAndHistory() {
	readings := testReadings(time.Now().Add(-time.Hour))
	err := s.storage.SaveReadings(readings)
	s.Require().NoError(err, err)

	s.T().Run("AllTanks", func(t *testing.T) {
		history, err := s.storage.History(24)
		require.NoError(t, err, err)
		require.Len(t, history, 2)
	})

	s.T().Run("OneTank", func(t *testing.T) {
		history, err := s.storage.History(24, WithTank(model.TankB))
		require.NoError(t, err, err)
		require.Len(t, history, 1)
		assert.Equal(t, model.TankB, history[0].TankID)
		require.NotNil(t, history[0].ChlorinePpm)
		assert.Equal(t, 1.2, *history[0].ChlorinePpm)
	})

	s.T().Run("OutsideWindow", func(t *testing.T) {
		old := testReadings(time.Now().Add(-48 * time.Hour))
		err := s.storage.SaveReadings(old)
		require.NoError(t, err, err)

		history, err := s.storage.History(24)
		require.NoError(t, err, err)
		require.Len(t, history, 2, "rows older than the window must not appear")
	})
}

func (s *StorageTestSuite) TestHistoryOrder() {
	older := testReadings(time.Now().Add(-2 * time.Hour))
	newer := testReadings(time.Now().Add(-time.Hour))

	s.Require().NoError(s.storage.SaveReadings(older))
	s.Require().NoError(s.storage.SaveReadings(newer))

	history, err := s.storage.History(24, WithTank(model.TankA))
	s.Require().NoError(err, err)
	s.Require().Len(history, 2)
	s.True(history[0].Timestamp.After(history[1].Timestamp), "newest first")
}

func (s *StorageTestSuite) TestLatestReadingFromCache() {
	readings := testReadings(time.Now())
	err := s.storage.CacheLatest(context.Background(), readings)
	s.Require().NoError(err, err)

	reading, err := s.storage.LatestReading(context.Background(), model.TankB)
	s.Require().NoError(err, err)
	s.Equal(model.TankB, reading.TankID)
	s.Require().NotNil(reading.ChlorinePpm)
	s.Equal(1.2, *reading.ChlorinePpm)
}

func (s *StorageTestSuite) TestLatestReadingFallsBackToDb() {
	readings := testReadings(time.Now())
	err := s.storage.SaveReadings(readings)
	s.Require().NoError(err, err)

	// nothing cached, the newest history row must serve
	reading, err := s.storage.LatestReading(context.Background(), model.TankA)
	s.Require().NoError(err, err)
	s.Equal(model.TankA, reading.TankID)
	s.Equal(120.5, reading.WaterLevelCm)
}

func (s *StorageTestSuite) TestLatestReadingNoData() {
	_, err := s.storage.LatestReading(context.Background(), model.TankA)
	s.ErrorIs(err, ErrNoReading)
}

func (s *StorageTestSuite) TestLatestReadingsSkipsEmptyTanks() {
	readings := testReadings(time.Now())[:1]
	err := s.storage.CacheLatest(context.Background(), readings)
	s.Require().NoError(err, err)

	got, err := s.storage.LatestReadings(context.Background())
	s.Require().NoError(err, err)
	s.Require().Len(got, 1)
	s.Equal(model.TankA, got[0].TankID)
}

func connectToTestDb() (*Storage, error) {
	return NewStorage(
		WithDbHost(os.Getenv("POSTGRES_HOST")),
		WithDbPort(os.Getenv("POSTGRES_PORT")),
		WithDbUser(os.Getenv("POSTGRES_USER")),
		WithDbPassword(os.Getenv("POSTGRES_PASSWORD")),
		WithDbName(os.Getenv("POSTGRES_NAME")),
		WithRedisAddress(os.Getenv("REDIS_ADDRESS")),
	)
}
