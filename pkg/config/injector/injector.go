package injector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.REDIS_PASSWORD}, ${ssm./glue/ledger-table}, ${secret.redis#password}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// ErrNoClient indica uma referência a ssm/secret sem cliente configurado.
var ErrNoClient = errors.New("injector: aws client not configured")

// Interfaces para abstrair o SDK da AWS (Permite Mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type Injector struct {
	ssm     SSMClient
	secrets SecretsClient
}

type Option func(*Injector)

func WithSSM(c SSMClient) Option         { return func(i *Injector) { i.ssm = c } }
func WithSecrets(c SecretsClient) Option { return func(i *Injector) { i.secrets = c } }

func New(opts ...Option) *Injector {
	i := &Injector{}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// FromAWS cria um Injector com os clientes reais de SSM e Secrets Manager.
func FromAWS(cfg aws.Config) *Injector {
	return New(
		WithSSM(ssm.NewFromConfig(cfg)),
		WithSecrets(secretsmanager.NewFromConfig(cfg)),
	)
}

// Inject percorre a struct e substitui as referências ${...} em todos os
// campos string, inclusive dentro de slices e maps.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("injector: target must be a non-nil pointer")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			if !v.Type().Field(k).IsExported() {
				continue
			}
			if err := i.injectRecursive(ctx, v.Field(k)); err != nil {
				return err
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolate(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)

	case reflect.Map:
		if v.IsNil() || v.Type().Key().Kind() != reflect.String || v.Type().Elem().Kind() != reflect.String {
			return nil
		}
		iter := v.MapRange()
		updates := make(map[string]string)
		for iter.Next() {
			newValue, err := i.interpolate(ctx, iter.Value().String())
			if err != nil {
				return err
			}
			updates[iter.Key().String()] = newValue
		}
		for k, val := range updates {
			v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), reflect.ValueOf(val).Convert(v.Type().Elem()))
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// interpolate realiza a substituição baseada em Regex
func (i *Injector) interpolate(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		groups := pattern.FindStringSubmatch(match)
		val, resolveErr := i.fetchValue(ctx, groups[1], groups[2])
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return val
	})

	return result, err
}

// fetchValue centraliza a busca de dados
func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	switch sourceType {
	case "env":
		return os.Getenv(key), nil

	case "ssm":
		if i.ssm == nil {
			return "", fmt.Errorf("%w: ssm %s", ErrNoClient, key)
		}
		return getParameter(ctx, i.ssm, key)

	case "secret":
		if i.secrets == nil {
			return "", fmt.Errorf("%w: secret %s", ErrNoClient, key)
		}
		id, field, _ := strings.Cut(key, "#")
		return getSecret(ctx, i.secrets, id, field)
	}
	return "", fmt.Errorf("injector: unknown source %q", sourceType)
}

func getParameter(ctx context.Context, client SSMClient, path string) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(path),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter %s: %w", path, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parâmetro SSM %s sem valor", path)
	}
	return *out.Parameter.Value, nil
}

// getSecret devolve o segredo inteiro ou, quando field é informado, o campo
// do segredo em formato JSON.
func getSecret(ctx context.Context, client SecretsClient, secretID, field string) (string, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SecretsManager %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("segredo %s sem SecretString", secretID)
	}

	val := *out.SecretString
	if field == "" {
		return val, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return "", fmt.Errorf("segredo %s não é JSON: %w", secretID, err)
	}
	fieldVal, ok := data[field]
	if !ok {
		return "", fmt.Errorf("segredo %s não contém o campo %s", secretID, field)
	}
	return fmt.Sprintf("%v", fieldVal), nil
}
