package commands

import (
	"encoding/json"
	"fmt"
	"io"
)

// render escreve v no formato pedido em --output. Em text, usa o String()
// do record; em json, o formato de wire.
func render(w io.Writer, v any) error {
	if output == "json" {
		return renderJSON(w, v)
	}
	_, err := fmt.Fprintln(w, v)
	return err
}

func renderJSON(w io.Writer, v any) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(body))
	return err
}
