package codecutil

import (
	"errors"
	"testing"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	payload := []byte("some segment payload")
	data := Seal("TestFormat", 3, payload)

	got, version, err := Open(data, "TestFormat", 0, 5)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if version != 3 {
		t.Errorf("version = %d, want 3", version)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %q, want %q", got, payload)
	}
}

func TestSealOpen_EmptyPayload(t *testing.T) {
	data := Seal("TestFormat", 0, nil)

	got, _, err := Open(data, "TestFormat", 0, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("payload length = %d, want 0", len(got))
	}
}

func TestOpen_WrongFormat(t *testing.T) {
	data := Seal("TestFormat", 0, []byte("x"))

	_, _, err := Open(data, "OtherFormat", 0, 0)
	if !errors.Is(err, ErrWrongFormat) {
		t.Errorf("Open() error = %v, want ErrWrongFormat", err)
	}
}

func TestOpen_VersionOutOfRange(t *testing.T) {
	data := Seal("TestFormat", 7, []byte("x"))

	_, _, err := Open(data, "TestFormat", 0, 5)
	if !errors.Is(err, ErrVersion) {
		t.Errorf("Open() error = %v, want ErrVersion", err)
	}
}

func TestOpen_Corruption(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{
			name: "flipped payload byte",
			mutate: func(data []byte) []byte {
				data[len(data)-6] ^= 0xff
				return data
			},
		},
		{
			name: "flipped magic byte",
			mutate: func(data []byte) []byte {
				data[0] ^= 0xff
				return data
			},
		},
		{
			name: "truncated",
			mutate: func(data []byte) []byte {
				return data[:5]
			},
		},
		{
			name:   "empty",
			mutate: func(data []byte) []byte { return nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(Seal("TestFormat", 0, []byte("payload bytes here")))
			_, _, err := Open(data, "TestFormat", 0, 0)
			if !errors.Is(err, ErrCorrupted) {
				t.Errorf("Open() error = %v, want ErrCorrupted", err)
			}
		})
	}
}

func TestFormatName(t *testing.T) {
	data := Seal("TestFormat", 0, []byte("x"))

	name, err := FormatName(data)
	if err != nil {
		t.Fatalf("FormatName() error = %v", err)
	}
	if name != "TestFormat" {
		t.Errorf("FormatName() = %q, want %q", name, "TestFormat")
	}
}

func TestFormatName_BadMagic(t *testing.T) {
	data := Seal("TestFormat", 0, []byte("x"))
	data[0] ^= 0xff

	if _, err := FormatName(data); !errors.Is(err, ErrCorrupted) {
		t.Errorf("FormatName() error = %v, want ErrCorrupted", err)
	}
}
