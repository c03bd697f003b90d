package formatter

import (
	"sort"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/jsonlog/core"
)

// JSONFormatter formats records as single-line JSON objects, keys in
// record order.
type JSONFormatter struct {
	Config
	encoder zapcore.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	cfg = cfg.withDefaults()
	// Every entry key is left empty so the encoder writes only the fields
	// added from the record.
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		EncodeTime:     zapcore.TimeEncoderOfLayout(cfg.TimestampFormat),
		EncodeDuration: zapcore.StringDurationEncoder,
		SkipLineEnding: true,
	})
	return &JSONFormatter{Config: cfg, encoder: enc}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	enc := f.encoder.Clone()

	var err error
	rec.Range(func(key string, v any) bool {
		err = addValue(enc, key, v)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	buf, err := enc.EncodeEntry(zapcore.Entry{}, nil)
	if err != nil {
		return nil, err
	}
	defer buf.Free()

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// addValue writes v under key, using the encoder's typed methods where
// one exists and encoding/json reflection otherwise.
func addValue(enc zapcore.ObjectEncoder, key string, v any) error {
	switch x := v.(type) {
	case string:
		enc.AddString(key, x)
	case bool:
		enc.AddBool(key, x)
	case int:
		enc.AddInt(key, x)
	case int8:
		enc.AddInt8(key, x)
	case int16:
		enc.AddInt16(key, x)
	case int32:
		enc.AddInt32(key, x)
	case int64:
		enc.AddInt64(key, x)
	case uint:
		enc.AddUint(key, x)
	case uint8:
		enc.AddUint8(key, x)
	case uint16:
		enc.AddUint16(key, x)
	case uint32:
		enc.AddUint32(key, x)
	case uint64:
		enc.AddUint64(key, x)
	case float32:
		enc.AddFloat32(key, x)
	case float64:
		enc.AddFloat64(key, x)
	case time.Time:
		enc.AddTime(key, x)
	case time.Duration:
		enc.AddDuration(key, x)
	case zapcore.ObjectMarshaler:
		return enc.AddObject(key, x)
	case zapcore.ArrayMarshaler:
		return enc.AddArray(key, x)
	case core.Object:
		return enc.AddObject(key, object(x))
	case map[string]any:
		return enc.AddObject(key, object(x))
	case error:
		enc.AddString(key, core.ErrorText(x))
	default:
		return enc.AddReflected(key, v)
	}
	return nil
}

// object encodes a context object with its keys sorted.
type object map[string]any

func (o object) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := addValue(enc, k, o[k]); err != nil {
			return err
		}
	}
	return nil
}
