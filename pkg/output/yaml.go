package output

import (
	"io"

	"github.com/arthur-debert/lineinfile/pkg/types"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer writes each call as a separate YAML document.
type YAMLRenderer struct {
	w io.Writer
}

// NewYAMLRenderer creates a YAML renderer writing to w.
func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{w: w}
}

func (r *YAMLRenderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *YAMLRenderer) RenderResult(result *types.Result) error {
	return r.encode(result)
}

func (r *YAMLRenderer) RenderResults(results []*types.Result) error {
	if results == nil {
		results = []*types.Result{}
	}
	return r.encode(resultsDoc{Results: results, Summary: Summarize(results)})
}

func (r *YAMLRenderer) RenderError(err error) error {
	return r.encode(newErrorDoc(err))
}
