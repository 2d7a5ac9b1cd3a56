package render

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// TextRenderer renders values as plain text. Numeric, boolean, and time
// kinds use the strconv/time Append family into the buffer's available
// capacity so they never allocate; everything else goes through fmt.
type TextRenderer struct {
	Config
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(cfg Config) *TextRenderer {
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}
	return &TextRenderer{Config: cfg}
}

// AppendValue appends v's textual form to buf.
func (r *TextRenderer) AppendValue(buf *bytes.Buffer, v any) {
	switch x := v.(type) {
	case string:
		buf.WriteString(x)
	case []byte:
		buf.Write(x)
	case int:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(x), 10))
	case int64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), x, 10))
	case int32:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(x), 10))
	case uint:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(x), 10))
	case uint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), x, 10))
	case float64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), x, 'f', -1, 64))
	case float32:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), float64(x), 'f', -1, 32))
	case bool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), x))
	case time.Time:
		buf.Write(x.AppendFormat(buf.AvailableBuffer(), r.TimeFormat))
	case time.Duration:
		buf.WriteString(x.String())
	case error:
		buf.WriteString(x.Error())
	case fmt.Stringer:
		buf.WriteString(x.String())
	default:
		fmt.Fprintf(buf, "%v", x)
	}
}
