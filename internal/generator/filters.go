package generator

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var registerFilters sync.Once

// registerDefaultFilters installs the filters used by the embedded templates.
// pongo2 keeps filters in a process-wide registry.
func registerDefaultFilters() {
	registerFilters.Do(func() {
		if !pongo2.FilterExists("tojson") {
			_ = pongo2.RegisterFilter("tojson", filterToJSON)
		}
	})
}

// filterToJSON renders its input as a JSON literal, without HTML escaping.
func filterToJSON(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(in.Interface()); err != nil {
		return nil, &pongo2.Error{Sender: "filter:tojson", OrigError: err}
	}
	return pongo2.AsSafeValue(string(bytes.TrimRight(buf.Bytes(), "\n"))), nil
}
