package types

// ParamMapping mapeia um campo do request para um campo dos dados
type ParamMapping struct {
	Name   string `json:"name"`
	MapsTo string `json:"maps_to"`
}

// Response para status e body
type Response struct {
	Status int         `json:"status"`
	Body   interface{} `json:"body,omitempty"`
}

// ServiceError monta o corpo de erro no formato do protocolo AWS JSON.
func ServiceError(status int, code, message string) *Response {
	return &Response{
		Status: status,
		Body:   map[string]string{"__type": code, "message": message},
	}
}
