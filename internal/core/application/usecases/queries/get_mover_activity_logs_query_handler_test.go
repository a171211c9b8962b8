package queries_test

import (
	"context"
	"testing"
	"time"

	"movers/internal/adapters/out/postgres/logrepo"
	"movers/internal/adapters/out/postgres/moverrepo"
	"movers/internal/core/application/usecases/queries"
	"movers/internal/core/domain/model/activitylog"
	"movers/internal/core/domain/model/kernel"
	"movers/internal/core/domain/model/mover"
	"movers/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMoverActivityLogsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMoverActivityLogsQueryHandler
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&moverrepo.MoverDTO{},
		&moverrepo.MoverItemDTO{},
		&logrepo.ActivityLogDTO{},
		&logrepo.ActivityLogItemDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetMoverActivityLogsQueryHandler(db)
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE activity_log_items, activity_logs, mover_items, movers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) seedMover() *mover.Mover {
	m, err := mover.NewMover(kernel.NewUUID(), "Albus", 50)
	suite.Require().NoError(err)

	repo := moverrepo.NewGormMoverRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), m))
	return m
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) seedEntry(
	moverID kernel.UUID,
	action mover.QuestState,
	itemIDs []kernel.UUID,
	createdAt time.Time,
) *activitylog.Entry {
	entry, err := activitylog.NewEntry(kernel.NewUUID(), moverID, action, itemIDs)
	suite.Require().NoError(err)

	repo := logrepo.NewGormActivityLogRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), entry))

	// Pin created_at so ordering assertions do not depend on insert timing.
	err = suite.db.Exec(
		"UPDATE activity_logs SET created_at = ? WHERE id = ?",
		createdAt, entry.ID().Bytes(),
	).Error
	suite.Require().NoError(err)
	return entry
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) TestHandle_UnknownMover_ReturnsNotFound() {
	query, err := queries.NewGetMoverActivityLogsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) TestHandle_NoHistory_ReturnsEmptySlice() {
	seeded := suite.seedMover()

	query, err := queries.NewGetMoverActivityLogsQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) TestHandle_ReturnsNewestFirstWithSnapshots() {
	seeded := suite.seedMover()
	itemIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.seedEntry(seeded.ID(), mover.Loading, itemIDs, base)
	suite.seedEntry(seeded.ID(), mover.OnMission, itemIDs, base.Add(time.Minute))
	suite.seedEntry(seeded.ID(), mover.Resting, nil, base.Add(2*time.Minute))

	query, err := queries.NewGetMoverActivityLogsQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Resting", result[0].Action)
	suite.Empty(result[0].ItemIDs, "mission completion snapshots the cargo after unloading")

	suite.Equal("OnMission", result[1].Action)
	suite.Equal(itemIDs, result[1].ItemIDs)

	suite.Equal("Loading", result[2].Action)
	suite.Equal(itemIDs, result[2].ItemIDs)

	for _, entry := range result {
		suite.Equal(seeded.ID(), entry.MoverID)
	}
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) TestHandle_OtherMoversHistoryExcluded() {
	first := suite.seedMover()
	second := suite.seedMover()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.seedEntry(first.ID(), mover.Loading, []kernel.UUID{kernel.NewUUID()}, base)
	suite.seedEntry(second.ID(), mover.Loading, []kernel.UUID{kernel.NewUUID()}, base)

	query, err := queries.NewGetMoverActivityLogsQuery(first.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(first.ID(), result[0].MoverID)
}

func (suite *GetMoverActivityLogsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMoverActivityLogsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetMoverActivityLogsQuery constructor")
}

func TestGetMoverActivityLogsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMoverActivityLogsQueryHandlerTestSuite))
}
