package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/lineinfile/pkg/types"
)

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a JSON renderer writing indented documents to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

func (r *JSONRenderer) RenderResult(result *types.Result) error {
	return r.encoder.Encode(result)
}

func (r *JSONRenderer) RenderResults(results []*types.Result) error {
	if results == nil {
		results = []*types.Result{}
	}
	return r.encoder.Encode(resultsDoc{Results: results, Summary: Summarize(results)})
}

func (r *JSONRenderer) RenderError(err error) error {
	return r.encoder.Encode(newErrorDoc(err))
}
