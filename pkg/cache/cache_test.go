package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/glue-catalog-toolkit/client"
	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
)

// stubAPI conta as chamadas que chegam ao serviço.
type stubAPI struct {
	client.API
	calls int
	err   error
}

func (s *stubAPI) GetDatabase(_ context.Context, req *model.GetDatabaseRequest) (*model.GetDatabaseResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &model.GetDatabaseResult{Database: (&model.Database{}).WithName(*req.Name).WithLocationUri("s3://lake/sales")}, nil
}

func (s *stubAPI) GetConnection(_ context.Context, req *model.GetConnectionRequest) (*model.GetConnectionResult, error) {
	s.calls++
	conn := &model.Connection{Name: req.Name, ConnectionType: model.ConnectionTypeJdbc}
	return &model.GetConnectionResult{Connection: conn}, nil
}

func (s *stubAPI) GetTableVersion(_ context.Context, req *model.GetTableVersionRequest) (*model.GetTableVersionResult, error) {
	s.calls++
	return &model.GetTableVersionResult{TableVersion: &model.TableVersion{VersionId: req.VersionId}}, nil
}

var conf = config.CacheConf{TTL: time.Minute, Prefix: "glue:"}

func TestGetDatabase_ReadThrough(t *testing.T) {
	api := &stubAPI{}
	rdb := NewMockRedis()
	provider := &metrics.MockProvider{}
	c := New(api, rdb, conf, WithMetrics(provider))
	req := &model.GetDatabaseRequest{Name: aws.String("sales")}

	first, err := c.GetDatabase(context.Background(), req)
	require.NoError(t, err)
	second, err := c.GetDatabase(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, api.calls)
	assert.True(t, first.Equal(second))
	assert.Len(t, provider.Named(metrics.CacheMissCount), 1)
	assert.Len(t, provider.Named(metrics.CacheHitCount), 1)

	keys := rdb.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "glue:GetDatabase:")
	assert.Equal(t, time.Minute, rdb.TTLs[keys[0]])

	// outro database, outra chave
	_, err = c.GetDatabase(context.Background(), &model.GetDatabaseRequest{Name: aws.String("hr")})
	require.NoError(t, err)
	assert.Equal(t, 2, api.calls)
}

func TestGetDatabase_InvalidRequest(t *testing.T) {
	api := &stubAPI{}
	c := New(api, NewMockRedis(), conf)

	_, err := c.GetDatabase(context.Background(), &model.GetDatabaseRequest{})
	assert.Error(t, err)
	assert.Zero(t, api.calls)
}

func TestGetDatabase_ServiceError(t *testing.T) {
	api := &stubAPI{err: errors.New("boom")}
	rdb := NewMockRedis()
	c := New(api, rdb, conf)

	_, err := c.GetDatabase(context.Background(), &model.GetDatabaseRequest{Name: aws.String("sales")})
	assert.EqualError(t, err, "boom")
	assert.Empty(t, rdb.Keys(), "erros não são guardados")
}

func TestRedisUnavailable(t *testing.T) {
	api := &stubAPI{}
	rdb := NewMockRedis()
	rdb.Err = errors.New("connection refused")
	c := New(api, rdb, conf)

	out, err := c.GetDatabase(context.Background(), &model.GetDatabaseRequest{Name: aws.String("sales")})
	require.NoError(t, err)
	assert.Equal(t, "sales", *out.Database.Name)
	assert.Equal(t, 1, api.calls)
}

func TestCachedSchemaSkew(t *testing.T) {
	api := &stubAPI{}
	rdb := NewMockRedis()
	c := New(api, rdb, conf)
	req := &model.GetConnectionRequest{Name: aws.String("warehouse"), HidePassword: aws.Bool(true)}

	key, err := c.key("GetConnection", req)
	require.NoError(t, err)
	rdb.Put(key, `{"Connection":{"Name":"warehouse","ConnectionType":"ODBC"}}`)

	_, err = c.GetConnection(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownValue)
	assert.Empty(t, rdb.Keys(), "entrada inválida removida")
	assert.Zero(t, api.calls)

	out, err := c.GetConnection(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.ConnectionTypeJdbc, out.Connection.ConnectionType)
}

func TestBypass(t *testing.T) {
	api := &stubAPI{}
	rdb := NewMockRedis()
	c := New(api, rdb, conf)
	ctx := context.Background()

	conn := &model.GetConnectionRequest{Name: aws.String("warehouse")}
	_, _ = c.GetConnection(ctx, conn)
	_, _ = c.GetConnection(ctx, conn)

	latest := &model.GetTableVersionRequest{DatabaseName: aws.String("sales"), TableName: aws.String("orders")}
	_, _ = c.GetTableVersion(ctx, latest)
	_, _ = c.GetTableVersion(ctx, latest)

	assert.Equal(t, 4, api.calls)
	assert.Empty(t, rdb.Keys())

	pinned := &model.GetTableVersionRequest{DatabaseName: aws.String("sales"), TableName: aws.String("orders"), VersionId: aws.String("3")}
	_, _ = c.GetTableVersion(ctx, pinned)
	out, err := c.GetTableVersion(ctx, pinned)
	require.NoError(t, err)
	assert.Equal(t, "3", *out.TableVersion.VersionId)
	assert.Equal(t, 5, api.calls)
}

func TestInvalidate(t *testing.T) {
	api := &stubAPI{}
	rdb := NewMockRedis()
	c := New(api, rdb, conf)
	req := &model.GetDatabaseRequest{Name: aws.String("sales")}

	_, err := c.GetDatabase(context.Background(), req)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(context.Background(), "GetDatabase", req))
	assert.Empty(t, rdb.Keys())
}

func TestKey_ScopedByCatalog(t *testing.T) {
	rdb := NewMockRedis()
	api := &stubAPI{}
	prod := New(api, rdb, conf, WithCatalogID("111111111111"))
	dev := New(api, rdb, conf, WithCatalogID("222222222222"))
	req := &model.GetDatabaseRequest{Name: aws.String("sales")}

	_, err := prod.GetDatabase(context.Background(), req)
	require.NoError(t, err)
	_, err = dev.GetDatabase(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, api.calls, "catálogos diferentes não compartilham entrada")
	assert.Len(t, rdb.Keys(), 2)
	assert.Nil(t, req.CatalogId)

	// o catálogo explícito igual ao padrão cai na mesma entrada
	explicit := &model.GetDatabaseRequest{Name: aws.String("sales"), CatalogId: aws.String("111111111111")}
	_, err = prod.GetDatabase(context.Background(), explicit)
	require.NoError(t, err)
	assert.Equal(t, 2, api.calls)
}
