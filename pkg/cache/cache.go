package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raywall/glue-catalog-toolkit/client"
	"github.com/raywall/glue-catalog-toolkit/model"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/raywall/glue-catalog-toolkit/pkg/metrics"
	"github.com/raywall/glue-catalog-toolkit/protocol"
)

// RedisClient é o subconjunto do go-redis usado pelo cache (permite Mocking)
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// keyspace separa as chaves do cache das demais chaves do Redis.
var keyspace = uuid.MustParse("6f1c1f3e-9a4b-4d51-9a57-1c2a0d6a7e11")

// Cache é um client.API que guarda no Redis os results das operações de
// leitura do catálogo que mudam pouco. As demais operações vão direto para
// o client embutido.
type Cache struct {
	client.API

	redis    RedisClient
	ttl      time.Duration
	prefix   string
	catalog  string
	provider metrics.Provider
	logger   zerolog.Logger
}

type Option func(*Cache)

func WithMetrics(p metrics.Provider) Option {
	return func(c *Cache) { c.provider = p }
}

// WithCatalogID informa o catálogo padrão do client embutido, para que a
// chave use o catálogo efetivo do request.
func WithCatalogID(id string) Option {
	return func(c *Cache) { c.catalog = id }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// New envolve api com o cache configurado.
func New(api client.API, rdb RedisClient, conf config.CacheConf, opts ...Option) *Cache {
	c := &Cache{
		API:      api,
		redis:    rdb,
		ttl:      conf.TTL,
		prefix:   conf.Prefix,
		provider: &metrics.NoopProvider{},
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "cache").Logger()
	return c
}

// NewRedis cria o cliente go-redis a partir da configuração.
func NewRedis(conf config.CacheConf) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
}

// GetDatabase consulta o cache antes do serviço.
func (c *Cache) GetDatabase(ctx context.Context, req *model.GetDatabaseRequest) (*model.GetDatabaseResult, error) {
	return readThrough(ctx, c, "GetDatabase", req, func() (*model.GetDatabaseResult, error) {
		return c.API.GetDatabase(ctx, req)
	})
}

// GetTableVersion só usa o cache para versões explícitas, que não mudam.
// Sem VersionId o serviço devolve a versão corrente.
func (c *Cache) GetTableVersion(ctx context.Context, req *model.GetTableVersionRequest) (*model.GetTableVersionResult, error) {
	if req == nil || req.VersionId == nil {
		return c.API.GetTableVersion(ctx, req)
	}
	return readThrough(ctx, c, "GetTableVersion", req, func() (*model.GetTableVersionResult, error) {
		return c.API.GetTableVersion(ctx, req)
	})
}

// GetConnection só usa o cache quando a senha vem oculta.
func (c *Cache) GetConnection(ctx context.Context, req *model.GetConnectionRequest) (*model.GetConnectionResult, error) {
	if req == nil || req.HidePassword == nil || !*req.HidePassword {
		return c.API.GetConnection(ctx, req)
	}
	return readThrough(ctx, c, "GetConnection", req, func() (*model.GetConnectionResult, error) {
		return c.API.GetConnection(ctx, req)
	})
}

// Invalidate remove a entrada de uma operação.
func (c *Cache) Invalidate(ctx context.Context, op string, req any) error {
	key, err := c.key(op, req)
	if err != nil {
		return err
	}
	if err := c.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache: invalidate %s: %w", op, err)
	}
	return nil
}

// key deriva a chave do request no formato de wire, que é determinístico.
func (c *Cache) key(op string, req any) (string, error) {
	body, err := protocol.Marshal(c.scoped(req))
	if err != nil {
		return "", err
	}
	return c.prefix + op + ":" + uuid.NewSHA1(keyspace, body).String(), nil
}

func readThrough[T any](ctx context.Context, c *Cache, op string, req any, fetch func() (*T, error)) (*T, error) {
	key, err := c.key(op, req)
	if err != nil {
		return nil, err
	}
	logger := c.logger.With().Str("op", op).Str("key", key).Logger()
	tags := []string{"op:" + op}

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		out := new(T)
		if err := protocol.Unmarshal(data, out); err != nil {
			// entrada gravada por uma versão com outro vocabulário
			_ = c.redis.Del(ctx, key).Err()
			logger.Warn().Err(err).Msg("entrada de cache inválida removida")
			return nil, fmt.Errorf("cache: %s: %w", op, err)
		}
		_ = c.provider.Count(metrics.CacheHitCount, 1, tags)
		return out, nil
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn().Err(err).Msg("redis indisponível, consultando o serviço")
	}

	_ = c.provider.Count(metrics.CacheMissCount, 1, tags)
	out, err := fetch()
	if err != nil {
		return nil, err
	}

	body, err := protocol.Encode(out)
	if err != nil {
		return nil, err
	}
	if err := c.redis.Set(ctx, key, body, c.ttl).Err(); err != nil {
		logger.Warn().Err(err).Msg("falha ao gravar no cache")
	}
	return out, nil
}

// scoped preenche o CatalogId ausente com o catálogo padrão, como o client
// faz antes de enviar o request.
func (c *Cache) scoped(req any) any {
	if c.catalog == "" {
		return req
	}
	switch r := req.(type) {
	case *model.GetDatabaseRequest:
		if r != nil && r.CatalogId == nil {
			return r.Clone().WithCatalogId(c.catalog)
		}
	case *model.GetTableVersionRequest:
		if r != nil && r.CatalogId == nil {
			return r.Clone().WithCatalogId(c.catalog)
		}
	case *model.GetConnectionRequest:
		if r != nil && r.CatalogId == nil {
			return r.Clone().WithCatalogId(c.catalog)
		}
	}
	return req
}
