package dyndb

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// keyAttr é a forma serializável de um atributo de chave. Chaves do
// DynamoDB só podem ser S, N ou B.
type keyAttr struct {
	S *string `json:"S,omitempty"`
	N *string `json:"N,omitempty"`
	B []byte  `json:"B,omitempty"`
}

// EncodeToken converte a LastEvaluatedKey em um token Base64 (URL safe).
// Uma chave vazia gera "".
func EncodeToken(lastKey map[string]types.AttributeValue) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}

	page := make(map[string]keyAttr, len(lastKey))
	for name, av := range lastKey {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			page[name] = keyAttr{S: &v.Value}
		case *types.AttributeValueMemberN:
			page[name] = keyAttr{N: &v.Value}
		case *types.AttributeValueMemberB:
			page[name] = keyAttr{B: v.Value}
		default:
			return "", fmt.Errorf("dyndb: unsupported key attribute %s (%T)", name, av)
		}
	}

	data, err := json.Marshal(page)
	if err != nil {
		return "", fmt.Errorf("dyndb: encode token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeToken é o inverso de EncodeToken. "" devolve uma chave nil.
func DecodeToken(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	var page map[string]keyAttr
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if len(page) == 0 {
		return nil, ErrInvalidToken
	}

	key := make(map[string]types.AttributeValue, len(page))
	for name, a := range page {
		switch {
		case a.S != nil:
			key[name] = &types.AttributeValueMemberS{Value: *a.S}
		case a.N != nil:
			key[name] = &types.AttributeValueMemberN{Value: *a.N}
		case a.B != nil:
			key[name] = &types.AttributeValueMemberB{Value: a.B}
		default:
			return nil, fmt.Errorf("%w: empty attribute %s", ErrInvalidToken, name)
		}
	}
	return key, nil
}
