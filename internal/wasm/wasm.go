// Package main parses and expands a formal date in order to test WASM
// compilation.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/theory/gedcomx/formal"
	"github.com/theory/gedcomx/internal/view"
)

func main() {
	// Parse a recurring formal date.
	date, _ := formal.Parse(`R3/+2000-01-01T12:00Z/P1M`)

	// Expand it into instants.
	times, _ := date.Expand(3)

	// Show the result.
	//nolint:errchkjson
	items, _ := json.Marshal(map[string]any{"date": view.New(date), "instants": times})

	//nolint:forbidigo
	fmt.Printf("%s\n", items)
}
