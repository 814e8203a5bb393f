package yapi

import "encoding/json"

// Interface is one documented endpoint in the registry, in the
// adapter's vocabulary. The registry's internal identifier and title
// are surfaced as id and name.
type Interface struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Path   string `json:"path"`
	Method string `json:"method"`
}

// rawInterface is the registry's own shape for a list item. Extra
// fields are ignored.
type rawInterface struct {
	ID     int64  `json:"_id"`
	Title  string `json:"title"`
	Path   string `json:"path"`
	Method string `json:"method"`
}

// envelope is the outer shape of every registry response. Data is kept
// raw so each call can apply its own shape checks.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// listData is the data member of /api/interface/list. List is kept raw
// because the registry has been observed returning non-array values
// there; those degrade to an empty result.
type listData struct {
	List json.RawMessage `json:"list"`
}
