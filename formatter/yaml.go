package formatter

import (
	"time"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/jsonlog/core"
)

// YAMLFormatter formats each record as a YAML document starting with
// "---", so a stream of records is a valid multi-document file.
type YAMLFormatter struct {
	Config
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(cfg Config) *YAMLFormatter {
	return &YAMLFormatter{Config: cfg.withDefaults()}
}

// Format formats a record as a YAML mapping, keys in record order.
func (f *YAMLFormatter) Format(rec *core.Record) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	var err error
	rec.Range(func(key string, v any) bool {
		val := new(yaml.Node)
		if err = val.Encode(f.yamlValue(v)); err != nil {
			return false
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			val,
		)
		return true
	})
	if err != nil {
		return nil, err
	}

	buf := bufferPool.Get()
	defer buf.Free()
	buf.AppendString("---\n")

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

func (f *YAMLFormatter) yamlValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format(f.TimestampFormat)
	case core.ErrorInfo:
		return x
	case error:
		return core.ErrorText(x)
	default:
		return v
	}
}
