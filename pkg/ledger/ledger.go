package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raywall/glue-catalog-toolkit/dyndb"
)

const (
	attrJobName    = "job_name"
	attrRunID      = "run_id"
	attrObservedAt = "observed_at"
)

// Ledger guarda o histórico de execuções observadas em uma tabela DynamoDB.
type Ledger struct {
	store  dyndb.Store[RunRecord]
	ttl    time.Duration
	logger zerolog.Logger
}

type Option func(*Ledger)

// WithTTL grava expires_at para que o DynamoDB expire registros antigos.
func WithTTL(ttl time.Duration) Option {
	return func(l *Ledger) { l.ttl = ttl }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New cria um Ledger sobre a tabela informada.
func New(client dyndb.DynamoDBClient, table string, opts ...Option) *Ledger {
	l := &Ledger{logger: log.Logger}
	for _, opt := range opts {
		opt(l)
	}
	l.store = dyndb.New(client, dyndb.TableConfig[RunRecord]{
		TableName: table,
		HashKey:   attrJobName,
		SortKey:   attrRunID,
	})
	l.logger = l.logger.With().Str("component", "ledger").Str("table", table).Logger()
	return l
}

// Record grava o snapshot se ele for mais recente que o já gravado.
// Devolve false quando a observação é mais antiga e foi descartada.
func (l *Ledger) Record(ctx context.Context, rec RunRecord) (bool, error) {
	if rec.JobName == "" || rec.RunID == "" {
		return false, fmt.Errorf("ledger: job name and run id are required")
	}
	if rec.ObservedAt.IsZero() {
		rec.ObservedAt = time.Now().UTC()
	}
	// a expiração conta a partir da observação, não da escrita
	if l.ttl > 0 {
		rec.ExpiresAt = rec.ObservedAt.Add(l.ttl).Unix()
	}

	// eventos fora de ordem não sobrescrevem uma observação mais nova
	cond := expression.AttributeNotExists(expression.Name(attrRunID)).
		Or(expression.Name(attrObservedAt).LessThanEqual(expression.Value(attributevalue.UnixTime(rec.ObservedAt))))

	if err := l.store.Put(ctx, rec, dyndb.WithCondition(cond)); err != nil {
		if errors.Is(err, dyndb.ErrConditionFailed) {
			l.logger.Debug().Str("job", rec.JobName).Str("run_id", rec.RunID).Msg("observação antiga descartada")
			return false, nil
		}
		return false, fmt.Errorf("ledger: put failed: %w", err)
	}

	l.logger.Debug().
		Str("job", rec.JobName).
		Str("run_id", rec.RunID).
		Str("state", rec.State.String()).
		Msg("execução registrada")
	return true, nil
}

// Get busca o último snapshot de uma execução.
func (l *Ledger) Get(ctx context.Context, jobName, runID string) (*RunRecord, error) {
	rec, err := l.store.Get(ctx, jobName, runID)
	if err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ledger: %w", err)
	}
	return rec, nil
}

// History lista as execuções de um job, da mais recente para a mais antiga.
// token vem da chamada anterior; "" começa do início. O token devolvido é ""
// quando não há mais páginas.
func (l *Ledger) History(ctx context.Context, jobName string, limit int32, token string) ([]RunRecord, string, error) {
	records, next, err := l.store.Query(
		dyndb.WithScanForward[RunRecord](false),
		dyndb.WithLastEvaluatedKey[RunRecord](token),
		dyndb.WithLimit[RunRecord](limit),
	).KeyEqual(attrJobName, jobName).Exec(ctx)
	if err != nil {
		if errors.Is(err, dyndb.ErrInvalidToken) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("ledger: %w", err)
	}
	return records, next, nil
}
