package preflight

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/glue-catalog-toolkit/model"
)

func newChecker() *Checker {
	dynamo := &MockDynamoDB{
		DescribeTableFunc: func(_ context.Context, in *dynamodb.DescribeTableInput) (*dynamodb.DescribeTableOutput, error) {
			if aws.ToString(in.TableName) == "orders" {
				return &dynamodb.DescribeTableOutput{Table: &dbtypes.TableDescription{
					TableStatus: dbtypes.TableStatusActive,
					ItemCount:   aws.Int64(10),
				}}, nil
			}
			return nil, &dbtypes.ResourceNotFoundException{Message: aws.String("Requested resource not found")}
		},
	}
	s3c := &MockS3{
		ListObjectsV2Func: func(_ context.Context, in *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
			if aws.ToInt32(in.MaxKeys) != 1 {
				return nil, errors.New("MaxKeys deveria ser 1")
			}
			switch aws.ToString(in.Bucket) {
			case "lake":
				if aws.ToString(in.Prefix) == "empty/" {
					return &s3.ListObjectsV2Output{}, nil
				}
				return &s3.ListObjectsV2Output{Contents: []s3types.Object{{Key: aws.String("sales/part-0")}}}, nil
			case "locked":
				return nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"}
			default:
				return nil, &s3types.NoSuchBucket{Message: aws.String("The specified bucket does not exist")}
			}
		},
	}
	return New(dynamo, s3c)
}

func TestCrawler(t *testing.T) {
	crawler := &model.Crawler{
		Name: aws.String("lake-crawler"),
		Targets: &model.CrawlerTargets{
			S3Targets: []model.S3Target{
				{Path: aws.String("s3://lake/sales/")},
				{Path: aws.String("s3://lake/empty/")},
				{Path: aws.String("s3://gone/x")},
				{Path: aws.String("s3://locked")},
				{Path: aws.String("/not/s3")},
			},
			DynamoDBTargets: []model.DynamoDBTarget{
				{Path: aws.String("orders")},
				{Path: aws.String("missing")},
			},
		},
	}

	report, err := newChecker().Crawler(context.Background(), crawler)
	require.NoError(t, err)
	assert.Equal(t, "lake-crawler", report.Crawler)
	require.Len(t, report.Results, 7)

	statuses := make([]Status, 0, len(report.Results))
	for _, r := range report.Results {
		statuses = append(statuses, r.Status)
	}
	assert.Equal(t, []Status{
		StatusReachable, StatusEmpty, StatusMissing, StatusError, StatusError,
		StatusReachable, StatusMissing,
	}, statuses)

	assert.Equal(t, KindDynamoDB, report.Results[5].Kind)
	assert.Equal(t, "status ACTIVE, 10 items", report.Results[5].Detail)
	assert.Contains(t, report.Results[3].Detail, "AccessDenied")

	assert.False(t, report.OK())
	assert.Len(t, report.Failed(), 4)
}

func TestCheck_NoTargets(t *testing.T) {
	report, err := newChecker().Check(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.Results)

	_, err = newChecker().Crawler(context.Background(), nil)
	assert.Error(t, err)
}

func TestCheck_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	targets := &model.CrawlerTargets{S3Targets: []model.S3Target{{Path: aws.String("s3://lake/sales")}}}
	_, err := newChecker().Check(ctx, targets)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParseS3Path(t *testing.T) {
	tests := []struct {
		in, bucket, prefix string
		wantErr            bool
	}{
		{"s3://lake/sales/2024", "lake", "sales/2024", false},
		{"s3://lake", "lake", "", false},
		{"s3:///x", "", "", true},
		{"lake/sales", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, p, err := ParseS3Path(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, b)
			assert.Equal(t, tt.prefix, p)
		})
	}
}
