package events

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/raywall/glue-catalog-toolkit/pkg/config"
	"github.com/rs/zerolog"
)

// SQSClient define a interface necessária para o listener (permite Mocking)
type SQSClient interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SQSListener consome a fila que recebe as regras do EventBridge.
type SQSListener struct {
	client      SQSClient
	queueURL    string
	waitSeconds int32
	maxMessages int32
	retryDelay  time.Duration
	dispatcher  *Dispatcher
	logger      zerolog.Logger
}

// NewSQSListener cria o listener a partir da seção events da configuração.
func NewSQSListener(client SQSClient, conf config.EventsConf, dispatcher *Dispatcher) *SQSListener {
	maxMessages := conf.MaxMessages
	if maxMessages <= 0 {
		maxMessages = 1
	}
	return &SQSListener{
		client:      client,
		queueURL:    conf.QueueURL,
		waitSeconds: conf.WaitSeconds,
		maxMessages: maxMessages,
		retryDelay:  5 * time.Second,
		dispatcher:  dispatcher,
		logger:      dispatcher.logger.With().Str("component", "sqs_listener").Logger(),
	}
}

// Start inicia o long polling (bloqueante) até o contexto ser cancelado.
func (s *SQSListener) Start(ctx context.Context) {
	if s.queueURL == "" {
		s.logger.Warn().Msg("URL da fila SQS não configurada. Listener desativado.")
		return
	}

	s.logger.Info().Str("queue", s.queueURL).Msg("monitorando fila de eventos do Glue")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("parando monitoramento SQS")
			return
		default:
		}

		out, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(s.queueURL),
			MaxNumberOfMessages: s.maxMessages,
			WaitTimeSeconds:     s.waitSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Error().Err(err).Dur("retry_in", s.retryDelay).Msg("erro no SQS")
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.retryDelay):
			}
			continue
		}

		for _, msg := range out.Messages {
			s.handle(ctx, msg)
		}
	}
}

func (s *SQSListener) handle(ctx context.Context, msg types.Message) {
	outcome, _ := s.dispatcher.Dispatch(ctx, []byte(aws.ToString(msg.Body)))
	if outcome == Retry {
		// a visibilidade expira e o SQS reentrega (ou manda para a DLQ)
		return
	}

	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("message_id", aws.ToString(msg.MessageId)).Msg("falha ao remover mensagem")
	}
}
