package preflight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raywall/glue-catalog-toolkit/model"
)

// DynamoDBClient interface para Mock
type DynamoDBClient interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// S3Client interface para Mock
type S3Client interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Kind é o tipo de alvo do crawler.
type Kind string

const (
	KindS3       Kind = "s3"
	KindDynamoDB Kind = "dynamodb"
)

// Status resume o resultado da checagem de um alvo.
type Status string

const (
	StatusReachable Status = "reachable"
	StatusEmpty     Status = "empty"
	StatusMissing   Status = "missing"
	StatusError     Status = "error"
)

// Result é a checagem de um alvo.
type Result struct {
	Kind   Kind   `json:"kind"`
	Path   string `json:"path"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Report agrega as checagens dos alvos de um crawler.
type Report struct {
	Crawler string   `json:"crawler,omitempty"`
	Results []Result `json:"results"`
}

// OK indica que nenhum alvo está ausente ou com erro.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if res.Status == StatusMissing || res.Status == StatusError {
			return false
		}
	}
	return true
}

// Failed lista os alvos ausentes ou com erro.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusMissing || res.Status == StatusError {
			out = append(out, res)
		}
	}
	return out
}

// Checker verifica se os alvos de um crawler existem antes do crawl.
type Checker struct {
	dynamo DynamoDBClient
	s3     S3Client
	logger zerolog.Logger
}

func New(dynamo DynamoDBClient, s3c S3Client) *Checker {
	return &Checker{
		dynamo: dynamo,
		s3:     s3c,
		logger: log.With().Str("component", "preflight").Logger(),
	}
}

// Crawler checa os alvos de um crawler.
func (c *Checker) Crawler(ctx context.Context, crawler *model.Crawler) (Report, error) {
	if crawler == nil {
		return Report{}, fmt.Errorf("preflight: crawler is nil")
	}
	report, err := c.Check(ctx, crawler.Targets)
	report.Crawler = aws.ToString(crawler.Name)
	return report, err
}

// Check checa cada alvo. Só devolve erro quando o contexto é cancelado; as
// falhas de cada alvo ficam no Report.
func (c *Checker) Check(ctx context.Context, targets *model.CrawlerTargets) (Report, error) {
	report := Report{Results: []Result{}}
	if targets == nil {
		return report, nil
	}

	for _, t := range targets.S3Targets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Results = append(report.Results, c.checkS3(ctx, aws.ToString(t.Path)))
	}
	for _, t := range targets.DynamoDBTargets {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Results = append(report.Results, c.checkDynamoDB(ctx, aws.ToString(t.Path)))
	}
	return report, nil
}

func (c *Checker) checkS3(ctx context.Context, path string) Result {
	res := Result{Kind: KindS3, Path: path}

	bucket, prefix, err := ParseS3Path(path)
	if err != nil {
		res.Status, res.Detail = StatusError, err.Error()
		return res
	}

	in := &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(1),
	}
	if prefix != "" {
		in.Prefix = aws.String(prefix)
	}

	out, err := c.s3.ListObjectsV2(ctx, in)
	if err != nil {
		res.Status, res.Detail = classify(err, "NoSuchBucket")
		c.logger.Debug().Err(err).Str("path", path).Msg("alvo S3 inacessível")
		return res
	}
	if len(out.Contents) == 0 {
		res.Status, res.Detail = StatusEmpty, "no objects under prefix"
		return res
	}
	res.Status = StatusReachable
	return res
}

func (c *Checker) checkDynamoDB(ctx context.Context, table string) Result {
	res := Result{Kind: KindDynamoDB, Path: table}
	if table == "" {
		res.Status, res.Detail = StatusError, "empty table name"
		return res
	}

	out, err := c.dynamo.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err != nil {
		res.Status, res.Detail = classify(err, "ResourceNotFoundException")
		c.logger.Debug().Err(err).Str("table", table).Msg("alvo DynamoDB inacessível")
		return res
	}

	res.Status = StatusReachable
	if out.Table != nil {
		res.Detail = fmt.Sprintf("status %s, %d items", out.Table.TableStatus, aws.ToInt64(out.Table.ItemCount))
	}
	return res
}

// classify separa "não existe" de qualquer outra falha (permissão, rede).
func classify(err error, notFoundCode string) (Status, string) {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if apiErr.ErrorCode() == notFoundCode {
			return StatusMissing, apiErr.ErrorMessage()
		}
		return StatusError, apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()
	}
	return StatusError, err.Error()
}

// ParseS3Path separa s3://bucket/prefix em bucket e prefixo.
func ParseS3Path(path string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(path, "s3://")
	if !ok {
		return "", "", fmt.Errorf("preflight: not an s3 path: %q", path)
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("preflight: missing bucket in %q", path)
	}
	return bucket, prefix, nil
}
