//go:build js && wasm

// package main provides the Wasm playground app.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strconv"
	"syscall/js"

	"github.com/theory/gedcomx/formal"
	"github.com/theory/gedcomx/internal/view"
	"github.com/theory/gedcomx/types"
)

const (
	optFormat int = 1 << iota
	optStructure
	optExpand
	optIndent
)

func parse(_ js.Value, args []js.Value) any {
	input := args[0].String()
	limit := args[1].Int()
	opts := args[2].Int()

	return execute(input, limit, opts)
}

func timestamp(_ js.Value, args []js.Value) any {
	return convert(args[0].String())
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("parse", js.FuncOf(parse))
	js.Global().Set("timestamp", js.FuncOf(timestamp))
	js.Global().Set("optFormat", js.ValueOf(optFormat))
	js.Global().Set("optStructure", js.ValueOf(optStructure))
	js.Global().Set("optExpand", js.ValueOf(optExpand))
	js.Global().Set("optIndent", js.ValueOf(optIndent))

	<-stream
}

func execute(input string, limit, opts int) string {
	// Parse the formal date.
	date, err := formal.Parse(input)
	if err != nil {
		return html.EscapeString(fmt.Sprintf("Error parsing %v", err))
	}

	var res any
	switch {
	case opts&optFormat == optFormat:
		res = date.String()
	case opts&optStructure == optStructure:
		res = view.New(date)
	case opts&optExpand == optExpand:
		res, err = date.Expand(limit)
	}

	// Error handling.
	if err != nil {
		return html.EscapeString(fmt.Sprintf("Error %v", err))
	}

	// Serialize the result
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts&optIndent == optIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Sprintf("Error serializing results: %v", err)
	}

	return html.EscapeString(buf.String())
}

// convert converts milliseconds since the epoch to xsd:dateTime and
// xsd:dateTime to milliseconds.
func convert(input string) string {
	if ms, err := strconv.ParseInt(input, 10, 64); err == nil {
		return types.FromMillis(ms).String()
	}

	ts, err := types.Parse(input)
	if err != nil {
		return html.EscapeString(fmt.Sprintf("Error %v", err))
	}
	return strconv.FormatInt(ts.UnixMilli(), 10)
}
