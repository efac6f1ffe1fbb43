package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Output управляет форматированием вывода CLI.
type Output struct {
	compact bool
	w       io.Writer // stdout для данных
	errW    io.Writer // stderr для сообщений
}

// NewOutput создаёт Output. Если compact=true, JSON выводится без отступов.
func NewOutput(compact bool) *Output {
	return &Output{
		compact: compact,
		w:       os.Stdout,
		errW:    os.Stderr,
	}
}

// JSON выводит сырой JSON ответа прокси.
// Данные идут в stdout, что позволяет pipe: monday item create ... | jq .
func (o *Output) JSON(raw json.RawMessage) {
	if o.compact {
		fmt.Fprintln(o.w, string(raw))
		return
	}

	buf := &bytes.Buffer{}
	if err := json.Indent(buf, raw, "", "  "); err != nil {
		fmt.Fprintln(o.w, string(raw))
		return
	}
	fmt.Fprintln(o.w, buf.String())
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, msg)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
