package s3dir

import "testing"

func TestWithPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"prefix", "prefix/"},
		{"prefix/", "prefix/"},
		{"a/b/c", "a/b/c/"},
		{"a/b/c/", "a/b/c/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := &Directory{}
			opt := WithPrefix(tt.input)
			if err := opt(d); err != nil {
				t.Fatalf("WithPrefix() error = %v", err)
			}
			if d.prefix != tt.want {
				t.Errorf("prefix = %q, want %q", d.prefix, tt.want)
			}
		})
	}
}
