package settings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueType describes how raw input is coerced before a write.
type ValueType int

const (
	TypeInteger ValueType = iota // 32-bit signed integer
	TypeString                   // Stored verbatim
	TypeLong                     // 64-bit signed integer
	TypeFloat                    // IEEE-754 single precision
)

// ValueTypes returns the four types in selector order.
func ValueTypes() []ValueType {
	return []ValueType{TypeInteger, TypeString, TypeLong, TypeFloat}
}

func (t ValueType) String() string {
	switch t {
	case TypeInteger:
		return "Int"
	case TypeString:
		return "String"
	case TypeLong:
		return "Long"
	case TypeFloat:
		return "Float"
	default:
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
}

// ParseValueType resolves a type name such as "Int", "long" or "float32".
func ParseValueType(s string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int", "integer", "int32":
		return TypeInteger, nil
	case "string", "str":
		return TypeString, nil
	case "long", "int64":
		return TypeLong, nil
	case "float", "float32":
		return TypeFloat, nil
	}
	return 0, fmt.Errorf("unknown value type %q (want Int, String, Long or Float)", s)
}

// Value is raw input coerced to a ValueType.
type Value struct {
	typ ValueType
	i32 int32
	i64 int64
	f32 float32
	str string
}

// Parse coerces raw according to t. Numeric types accept base-10 literals
// only; failures return a *ParseError.
func (t ValueType) Parse(raw string) (Value, error) {
	switch t {
	case TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Value{}, &ParseError{Type: t, Input: raw, Err: err}
		}
		return Value{typ: t, i32: int32(n)}, nil
	case TypeString:
		return Value{typ: t, str: raw}, nil
	case TypeLong:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Type: t, Input: raw, Err: err}
		}
		return Value{typ: t, i64: n}, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return Value{}, &ParseError{Type: t, Input: raw, Err: err}
		}
		return Value{typ: t, f32: float32(f)}, nil
	}
	return Value{}, &ParseError{Type: t, Input: raw, Err: fmt.Errorf("unsupported type")}
}

// Type returns the type the value was parsed as.
func (v Value) Type() ValueType { return v.typ }

// Int returns the value of a TypeInteger value.
func (v Value) Int() int32 { return v.i32 }

// Long returns the value of a TypeLong value.
func (v Value) Long() int64 { return v.i64 }

// Float returns the value of a TypeFloat value.
func (v Value) Float() float32 { return v.f32 }

// String formats the value the way the settings provider stores it.
func (v Value) String() string {
	switch v.typ {
	case TypeInteger:
		return strconv.FormatInt(int64(v.i32), 10)
	case TypeLong:
		return strconv.FormatInt(v.i64, 10)
	case TypeFloat:
		return FormatFloat(v.f32)
	default:
		return v.str
	}
}

// FormatFloat renders f the way a device stores it for putFloat: plain
// decimal with at least one fraction digit for 1e-3 <= |f| < 1e7, otherwise
// a mantissa and an "E<exp>" exponent ("1.0E7", "1.5E-4"). Digits are the
// shortest that parse back to the same float32.
func FormatFloat(f float32) string {
	d := float64(f)
	switch {
	case math.IsNaN(d):
		return "NaN"
	case math.IsInf(d, 1):
		return "Infinity"
	case math.IsInf(d, -1):
		return "-Infinity"
	}

	if abs := math.Abs(d); abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(d, 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(d, 'e', -1, 32)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if neg {
		exp = "-" + exp
	}
	return mantissa + "E" + exp
}
