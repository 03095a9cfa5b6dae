package injector

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	Table    string
	Password string
	Nested   *nested
	Hosts    []string
	Labels   map[string]string
}

type nested struct {
	URL string
}

func TestInjector_Inject(t *testing.T) {
	t.Setenv("GLUE_ENV", "prod")

	ssmMock := &MockSSMClient{
		GetParameterFunc: func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
			assert.True(t, *params.WithDecryption)
			return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String("runs-" + *params.Name)}}, nil
		},
	}
	secretsMock := &MockSecretsClient{
		GetSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(`{"password":"s3cr3t","port":6379}`)}, nil
		},
	}

	cfg := &target{
		Table:    "${ssm./glue/table}",
		Password: "${secret.redis#password}",
		Nested:   &nested{URL: "https://${env.GLUE_ENV}.example.com"},
		Hosts:    []string{"${env.GLUE_ENV}-a", "fixo"},
		Labels:   map[string]string{"port": "${secret.redis#port}"},
	}

	inj := New(WithSSM(ssmMock), WithSecrets(secretsMock))
	require.NoError(t, inj.Inject(context.Background(), cfg))

	assert.Equal(t, "runs-/glue/table", cfg.Table)
	assert.Equal(t, "s3cr3t", cfg.Password)
	assert.Equal(t, "https://prod.example.com", cfg.Nested.URL)
	assert.Equal(t, []string{"prod-a", "fixo"}, cfg.Hosts)
	assert.Equal(t, "6379", cfg.Labels["port"])
}

func TestInjector_Errors(t *testing.T) {
	t.Run("Sem cliente configurado", func(t *testing.T) {
		cfg := &target{Table: "${ssm./glue/table}"}
		err := New().Inject(context.Background(), cfg)
		assert.ErrorIs(t, err, ErrNoClient)
		assert.Equal(t, "${ssm./glue/table}", cfg.Table)
	})

	t.Run("Falha no SSM", func(t *testing.T) {
		boom := errors.New("access denied")
		inj := New(WithSSM(&MockSSMClient{
			GetParameterFunc: func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
				return nil, boom
			},
		}))
		err := inj.Inject(context.Background(), &target{Table: "${ssm./x}"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Campo ausente no segredo", func(t *testing.T) {
		inj := New(WithSecrets(&MockSecretsClient{
			GetSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
				return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(`{"user":"etl"}`)}, nil
			},
		}))
		err := inj.Inject(context.Background(), &target{Password: "${secret.db#password}"})
		assert.Error(t, err)
	})

	t.Run("Target inválido", func(t *testing.T) {
		assert.Error(t, New().Inject(context.Background(), target{}))
	})
}
