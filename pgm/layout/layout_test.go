package layout

import (
	"bytes"
	"errors"
	"testing"
)

func testLayout() *Layout {
	return New(
		U16Field("size"),
		Pad(2),
		BytesField("tag", 4),
		I16Field("offset"),
		U8Field("flags"),
		I8Field("gain"),
		Pad(2),
	)
}

func TestLayoutSize(t *testing.T) {
	l := testLayout()
	if got, want := l.Size(), 14; got != want {
		t.Fatalf("Size() = %d, want %d", got, want)
	}
}

func TestDecode(t *testing.T) {
	l := testLayout()
	b := []byte{
		0x04, 0x2A, // size = 10756, little-endian
		0x00, 0x00,
		'D', 'E', 'M', 'O',
		0xFE, 0xFF, // offset = -2
		0x7F,
		0x88, // gain = -120
		0x00, 0x00,
	}
	vals, err := l.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := vals[0].Int; got != 10756 {
		t.Errorf("size = %d, want 10756", got)
	}
	if got := string(vals[1].Bytes); got != "DEMO" {
		t.Errorf("tag = %q, want %q", got, "DEMO")
	}
	if got := vals[2].Int; got != -2 {
		t.Errorf("offset = %d, want -2", got)
	}
	if got := vals[3].Int; got != 127 {
		t.Errorf("flags = %d, want 127", got)
	}
	if got := vals[4].Int; got != -120 {
		t.Errorf("gain = %d, want -120", got)
	}
}

func TestDecodeTruncated(t *testing.T) {
	l := testLayout()
	_, err := l.Decode(make([]byte, l.Size()-1))
	if err == nil {
		t.Fatal("Decode accepted a short buffer")
	}
	var te *TruncatedInputError
	if !errors.As(err, &te) {
		t.Fatalf("error = %T, want *TruncatedInputError", err)
	}
	if te.Want != l.Size() || te.Got != l.Size()-1 {
		t.Errorf("error = %v, want want=%d got=%d", te, l.Size(), l.Size()-1)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := testLayout()
	b := []byte{
		0x04, 0x2A,
		0x00, 0x00,
		'D', 'E', 'M', 'O',
		0xFE, 0xFF,
		0x7F,
		0x88,
		0x00, 0x00,
	}
	vals, err := l.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := l.Encode(vals); !bytes.Equal(got, b) {
		t.Errorf("Encode(Decode(b)) = % X, want % X", got, b)
	}
}

func TestEncodeWritesPaddingAsZero(t *testing.T) {
	l := New(Pad(2), U8Field("v"), Pad(1))
	got := l.Encode([]Value{Int(0xAB)})
	want := []byte{0, 0, 0xAB, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}
}

func TestEncodeShortBytesFieldIsNULPadded(t *testing.T) {
	l := New(BytesField("name", 8))
	got := l.Encode([]Value{Str([]byte("abc"))})
	want := []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % X, want % X", got, want)
	}
}

func TestDecodeIgnoresPaddingContents(t *testing.T) {
	l := New(Pad(1), U8Field("v"))
	vals, err := l.Decode([]byte{0xFF, 7})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if vals[0].Int != 7 {
		t.Errorf("v = %d, want 7", vals[0].Int)
	}
}
