package session_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type redisStoreSuite struct {
	suite.Suite

	container testcontainers.Container
	client    *redis.Client
	store     *session.RedisStore
}

// entry point to run the tests in the suite
func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(redisStoreSuite))
}

// before all tests in the suite
func (suite *redisStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.4-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	suite.Require().NoError(suite.client.Ping(ctx).Err())

	suite.store = session.NewRedisStore(suite.client)
}

// after all tests in the suite
func (suite *redisStoreSuite) TearDownSuite() {
	ctx := context.Background()
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		_ = suite.container.Terminate(ctx)
	}
}

func (suite *redisStoreSuite) TestSetGetRoundTrip() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "s1", "coupon_code", "SAVE10"))

	got, err := suite.store.Get(ctx, "s1", "coupon_code")
	suite.Require().NoError(err)
	suite.Equal("SAVE10", got)
}

func (suite *redisStoreSuite) TestGetMissingKey() {
	_, err := suite.store.Get(context.Background(), "missing-session", "cart")
	suite.ErrorIs(err, session.ErrNotFound)
}

func (suite *redisStoreSuite) TestDeleteSubsetOfKeys() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "s2", "cart", "[]"))
	suite.Require().NoError(suite.store.Set(ctx, "s2", "selectedAddressId", "addr-1"))

	suite.Require().NoError(suite.store.Delete(ctx, "s2", "cart", "never-existed"))

	_, err := suite.store.Get(ctx, "s2", "cart")
	suite.ErrorIs(err, session.ErrNotFound)

	got, err := suite.store.Get(ctx, "s2", "selectedAddressId")
	suite.Require().NoError(err)
	suite.Equal("addr-1", got)
}

func (suite *redisStoreSuite) TestClearDropsWholeSession() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "s3", "a", "1"))
	suite.Require().NoError(suite.store.Set(ctx, "s3", "b", "2"))

	suite.Require().NoError(suite.store.Clear(ctx, "s3"))

	_, err := suite.store.Get(ctx, "s3", "a")
	suite.ErrorIs(err, session.ErrNotFound)
	_, err = suite.store.Get(ctx, "s3", "b")
	suite.ErrorIs(err, session.ErrNotFound)
}

func (suite *redisStoreSuite) TestWriteRefreshesTTL() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "s4", "cart", "[]"))

	ttl, err := suite.client.TTL(ctx, "shopper:s4").Result()
	suite.Require().NoError(err)
	suite.Greater(ttl.Hours(), float64(0))
	suite.LessOrEqual(ttl, session.DefaultTTL)
}
