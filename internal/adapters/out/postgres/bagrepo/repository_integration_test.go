package bagrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/bagrepo"
	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// BagRepositoryIntegrationTestSuite provides integration tests for
// GormBagRepository using PostgreSQL containers.
type BagRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *bagrepo.GormBagRepository
	tracker    *MockAggregateTracker
}

func (suite *BagRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&bagrepo.BagDTO{}))
}

func (suite *BagRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bags").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = bagrepo.NewGormBagRepository(suite.db, suite.tracker)
}

func (suite *BagRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BagRepositoryIntegrationTestSuite) TestAdd_ValidBag_Success() {
	ctx := context.Background()
	testBag := suite.createTestBag(1, bag.DestinationFacility)

	suite.tracker.On("TrackAggregate", testBag.ID(), testBag).Once()

	err := suite.repository.Add(ctx, testBag)
	suite.Require().NoError(err)

	suite.assertBagCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *BagRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesMembers() {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	testBag := suite.createTestBag(1, bag.DestinationFacility)
	member := suite.createSortingOrder("RF123456", 2000, false)

	_, err := testBag.Admit(member, now)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testBag))

	restored, err := suite.repository.Get(ctx, testBag.ID())
	suite.Require().NoError(err)

	suite.Equal(testBag.ID(), restored.ID())
	suite.Equal(1, restored.Seq())
	suite.Equal(testBag.Name(), restored.Name())
	suite.Equal(bag.StatusFilling, restored.Status())
	suite.Equal(bag.PriorityRegular, restored.Priority())
	suite.Equal(bag.DestinationFacility, restored.Destination())

	suite.Require().Len(restored.Members(), 1)
	suite.True(restored.HasMember(member.ID()))
	suite.Equal("RF123456", restored.Members()[0].TagCode)
	suite.Equal(int64(2000), restored.TotalWeight().Grams())
}

func (suite *BagRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BagRepositoryIntegrationTestSuite) TestUpdate_Finalized_PersistsManifestCode() {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	testBag := suite.createTestBag(1, bag.DestinationFacility)
	member := suite.createSortingOrder("RF123456", 2000, false)

	_, err := testBag.Admit(member, now)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testBag))

	_, err = testBag.Finalize(now.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testBag))

	restored, err := suite.repository.Get(ctx, testBag.ID())
	suite.Require().NoError(err)
	suite.Equal(bag.StatusReady, restored.Status())
	suite.NotEmpty(restored.ManifestCode())
	suite.Require().NotNil(restored.ReadyAt())
}

func (suite *BagRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	testBag := suite.createTestBag(1, bag.DestinationFacility)

	err := suite.repository.Update(ctx, testBag)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *BagRepositoryIntegrationTestSuite) TestDelete_RemovesRecord() {
	ctx := context.Background()
	testBag := suite.createTestBag(1, bag.DestinationFacility)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testBag))

	suite.Require().NoError(suite.repository.Delete(ctx, testBag.ID()))
	suite.assertBagCount(0)

	err := suite.repository.Delete(ctx, testBag.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BagRepositoryIntegrationTestSuite) TestGetAllFilling_OrderedBySeq() {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	second := suite.createTestBag(2, bag.DestinationFacility)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	first := suite.createTestBag(1, bag.DestinationFacility)
	member := suite.createSortingOrder("RF999999", 1000, false)
	_, err := first.Admit(member, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	finalized := suite.createTestBag(3, bag.DestinationFacility)
	other := suite.createSortingOrder("QR111111", 1000, false)
	_, err = finalized.Admit(other, now)
	suite.Require().NoError(err)
	_, err = finalized.Finalize(now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, finalized))

	filling, err := suite.repository.GetAllFilling(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(filling, 2)
	suite.Equal(1, filling[0].Seq())
	suite.Equal(2, filling[1].Seq())
}

func (suite *BagRepositoryIntegrationTestSuite) TestNextSequence_PerDestination() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	seq, err := suite.repository.NextSequence(ctx, bag.DestinationFacility)
	suite.Require().NoError(err)
	suite.Equal(1, seq)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestBag(1, bag.DestinationFacility)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestBag(2, bag.DestinationFacility)))

	seq, err = suite.repository.NextSequence(ctx, bag.DestinationFacility)
	suite.Require().NoError(err)
	suite.Equal(3, seq)

	// The outlet direction allocates independently.
	seq, err = suite.repository.NextSequence(ctx, bag.DestinationOutlet)
	suite.Require().NoError(err)
	suite.Equal(1, seq)
}

func (suite *BagRepositoryIntegrationTestSuite) createTestBag(seq int, destination bag.Destination) *bag.Bag {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	testBag, err := bag.NewBag(kernel.NewUUID(), seq, bag.PriorityRegular, destination, 0, now)
	suite.Require().NoError(err)
	return testBag
}

// createSortingOrder builds a tagged order ready for bag admission.
func (suite *BagRepositoryIntegrationTestSuite) createSortingOrder(
	tagCode string,
	grams int64,
	express bool,
) *order.Order {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	weight, err := kernel.NewWeight(grams)
	suite.Require().NoError(err)
	item, err := order.NewLineItem(order.ServiceWashOnly, weight, 1, 50000, express)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "customer-ref", []order.LineItem{item}, order.PaymentCash, "ivanova", now)
	suite.Require().NoError(err)

	// Binding advances reception to sorting.
	tag, err := order.NewTag(tagCode, order.TagRFID, now, "ivanova")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.BindTag(tag, "ivanova", now))

	return testOrder
}

// assertBagCount verifies the number of bags in the database.
func (suite *BagRepositoryIntegrationTestSuite) assertBagCount(expected int) {
	var count int64
	err := suite.db.Model(&bagrepo.BagDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestBagRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BagRepositoryIntegrationTestSuite))
}
