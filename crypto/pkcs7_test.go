package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"jayconrod.com/cryptopals/crypto"
)

func TestPad(t *testing.T) {
	for _, test := range []struct {
		src       string
		blockSize int
		want      string
	}{
		{"YELLOW SUBMARINE", 20, "YELLOW SUBMARINE\x04\x04\x04\x04"},
		{"", 4, "\x04\x04\x04\x04"},
		{"abcd", 4, "abcd\x04\x04\x04\x04"},
		{"abc", 4, "abc\x01"},
	} {
		got := crypto.Pad(nil, []byte(test.src), test.blockSize)
		if string(got) != test.want {
			t.Errorf("Pad(%q, %d): got %q; want %q", test.src, test.blockSize, got, test.want)
		}
		if n := crypto.PadLength(len(test.src), test.blockSize); n != len(test.want) {
			t.Errorf("PadLength(%d, %d): got %d; want %d", len(test.src), test.blockSize, n, len(test.want))
		}
	}
}

func TestPadInPlace(t *testing.T) {
	buf := make([]byte, 0, 32)
	buf = append(buf, "hello"...)
	got := crypto.Pad(buf[:0], buf, 16)
	want := "hello" + string(bytes.Repeat([]byte{11}, 11))
	if string(got) != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestPadBlock(t *testing.T) {
	got, err := crypto.PadBlock([]byte("YELLOW SUBMARINE"), 20)
	if err != nil {
		t.Fatal(err)
	}
	if want := "YELLOW SUBMARINE\x04\x04\x04\x04"; string(got) != want {
		t.Errorf("got %q; want %q", got, want)
	}

	got, err = crypto.PadBlock([]byte("YELLOW SUBMARINE"), 16)
	if err != nil {
		t.Fatal(err)
	}
	if want := "YELLOW SUBMARINE"; string(got) != want {
		t.Errorf("got %q; want %q", got, want)
	}

	if _, err := crypto.PadBlock(make([]byte, 17), 16); !errors.Is(err, crypto.ErrOversizedBlock) {
		t.Errorf("got error %v; want %v", err, crypto.ErrOversizedBlock)
	}
}

func TestUnpad(t *testing.T) {
	for _, test := range []struct {
		text string
		want string
		ok   bool
	}{
		{"", "", false},
		{"ICE ICE BABY\x04\x04\x04\x04", "ICE ICE BABY", true},
		{"ICE ICE BABY\x05\x05\x05\x05", "", false},
		{"ICE ICE BABY\x01\x02\x03\x04", "", false},
		{"ICE ICE BABY\x00", "", false},
		{"\x02", "", false},
		{"\x01", "", true},
		{string(bytes.Repeat([]byte{16}, 16)), "", true},
		{string(bytes.Repeat([]byte{17}, 17)), "", false},
	} {
		got, err := crypto.Unpad([]byte(test.text))
		if test.ok {
			if err != nil {
				t.Errorf("unexpected failure on %q: %v", test.text, err)
			} else if string(got) != test.want {
				t.Errorf("Unpad(%q): got %q; want %q", test.text, got, test.want)
			}
		} else if !errors.Is(err, crypto.ErrInvalidPadding) {
			t.Errorf("Unpad(%q): got error %v; want %v", test.text, err, crypto.ErrInvalidPadding)
		}
	}
}

func TestStrip(t *testing.T) {
	for _, test := range []struct {
		text, want string
	}{
		{"", ""},
		{"ICE ICE BABY\x04\x04\x04\x04", "ICE ICE BABY"},
		{"ICE ICE BABY\x05\x05\x05\x05", "ICE ICE BABY\x05\x05\x05\x05"},
		{"ICE ICE BABY\x01\x02\x03\x04", "ICE ICE BABY\x01\x02\x03\x04"},
		{"no padding here!", "no padding here!"},
	} {
		if got := crypto.Strip([]byte(test.text)); string(got) != test.want {
			t.Errorf("Strip(%q): got %q; want %q", test.text, got, test.want)
		}
	}
}

func FuzzPadUnpad(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ICE ICE BABY"))
	f.Add(bytes.Repeat([]byte{16}, 16))
	f.Fuzz(func(t *testing.T, pt []byte) {
		padded := crypto.Pad(nil, pt, crypto.BlockSize)
		if len(padded)%crypto.BlockSize != 0 {
			t.Fatalf("padded length %d not a multiple of block size", len(padded))
		}
		got, err := crypto.Unpad(padded)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, pt) {
			t.Fatalf("got %q; want %q", got, pt)
		}
		if got := crypto.Strip(padded); !bytes.Equal(got, pt) {
			t.Fatalf("Strip: got %q; want %q", got, pt)
		}
	})
}
