package core

import (
	"fmt"
	"strconv"
)

// Loggable is the formatting contract for values passed to the
// variadic logging entry points. Types that implement it control
// their own textual representation.
type Loggable interface {
	LogText() string
}

// Text converts a single loggable value to its textual form.
// Numeric types and booleans format via strconv so the common cases
// never reach fmt. Everything else falls back to fmt.Sprint.
func Text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case Loggable:
		return t.LogText()
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprint(v)
	}
}

// Join converts and concatenates an ordered sequence of loggable
// values into one string, with no separator between parts.
func Join(parts ...any) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return Text(parts[0])
	}

	buf := getBuffer()
	for _, p := range parts {
		buf.WriteString(Text(p))
	}
	s := buf.String()
	putBuffer(buf)
	return s
}
