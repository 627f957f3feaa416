// Package layout implements a declarative codec for the fixed-size
// little-endian records that make up an MPC 1000 program file. A Layout
// is an ordered list of typed fields and anonymous padding runs; Decode
// and Encode walk the list, so a record's wire format is written down
// exactly once.
package layout

import (
	"encoding/binary"
	"fmt"
)

type Kind int

const (
	U8 Kind = iota
	I8
	U16
	I16
	Bytes
	Padding
)

type Field struct {
	Name string
	Kind Kind
	// Len is the byte width of Bytes and Padding fields. The integer
	// kinds carry their own width.
	Len int
}

func (f Field) width() int {
	switch f.Kind {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	default:
		return f.Len
	}
}

func U8Field(name string) Field  { return Field{Name: name, Kind: U8} }
func I8Field(name string) Field  { return Field{Name: name, Kind: I8} }
func U16Field(name string) Field { return Field{Name: name, Kind: U16} }
func I16Field(name string) Field { return Field{Name: name, Kind: I16} }
func Pad(n int) Field            { return Field{Kind: Padding, Len: n} }
func BytesField(name string, n int) Field {
	return Field{Name: name, Kind: Bytes, Len: n}
}

// Value is one decoded field: Int for the integer kinds, Bytes for
// fixed-length byte strings.
type Value struct {
	Int   int
	Bytes []byte
}

func Int(v int) Value    { return Value{Int: v} }
func Str(b []byte) Value { return Value{Bytes: b} }

type Layout struct {
	fields []Field
	size   int
}

func New(fields ...Field) *Layout {
	l := &Layout{fields: fields}
	for _, f := range fields {
		l.size += f.width()
	}
	return l
}

// Size is the exact number of bytes Decode consumes and Encode produces.
func (l *Layout) Size() int {
	return l.size
}

// TruncatedInputError reports a decode buffer shorter than the record
// it was supposed to hold.
type TruncatedInputError struct {
	Want int
	Got  int
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input: want %d bytes, got %d", e.Want, e.Got)
}

// Decode reads exactly Size() bytes of b and returns the typed field
// values in declaration order. Padding runs produce no value and their
// byte contents are ignored.
func (l *Layout) Decode(b []byte) ([]Value, error) {
	if len(b) < l.size {
		return nil, &TruncatedInputError{Want: l.size, Got: len(b)}
	}
	vals := make([]Value, 0, len(l.fields))
	off := 0
	for _, f := range l.fields {
		switch f.Kind {
		case U8:
			vals = append(vals, Int(int(b[off])))
		case I8:
			vals = append(vals, Int(int(int8(b[off]))))
		case U16:
			vals = append(vals, Int(int(binary.LittleEndian.Uint16(b[off:]))))
		case I16:
			vals = append(vals, Int(int(int16(binary.LittleEndian.Uint16(b[off:])))))
		case Bytes:
			v := make([]byte, f.Len)
			copy(v, b[off:off+f.Len])
			vals = append(vals, Str(v))
		}
		off += f.width()
	}
	return vals, nil
}

// Encode writes the given field values back into a fresh Size()-byte
// buffer. Padding runs are written as zeros; Bytes values shorter than
// their field are NUL-padded. The value list must line up with the
// layout's typed fields, anything else is a programming error and
// panics.
func (l *Layout) Encode(vals []Value) []byte {
	b := make([]byte, l.size)
	off := 0
	i := 0
	for _, f := range l.fields {
		if f.Kind != Padding && len(vals) <= i {
			panic(fmt.Sprintf("layout: %d values for %d fields", len(vals), l.typedFieldCount()))
		}
		switch f.Kind {
		case U8, I8:
			b[off] = byte(vals[i].Int)
			i++
		case U16, I16:
			binary.LittleEndian.PutUint16(b[off:], uint16(vals[i].Int))
			i++
		case Bytes:
			if f.Len < len(vals[i].Bytes) {
				panic(fmt.Sprintf("layout: %q value is %d bytes, field is %d", f.Name, len(vals[i].Bytes), f.Len))
			}
			copy(b[off:off+f.Len], vals[i].Bytes)
			i++
		}
		off += f.width()
	}
	if i != len(vals) {
		panic(fmt.Sprintf("layout: %d values for %d fields", len(vals), l.typedFieldCount()))
	}
	return b
}

func (l *Layout) typedFieldCount() int {
	n := 0
	for _, f := range l.fields {
		if f.Kind != Padding {
			n++
		}
	}
	return n
}
