package format

import (
	"testing"
	"time"
)

func TestFormatMillis(t *testing.T) {
	t.Parallel()
	if got := FormatMillis(1234 * time.Microsecond); got != "1.234" {
		t.Errorf("FormatMillis = %q, want 1.234", got)
	}
}

func TestFormatSpeedup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		base, d time.Duration
		want    string
	}{
		{10 * time.Millisecond, 5 * time.Millisecond, "2.00x"},
		{10 * time.Millisecond, 20 * time.Millisecond, "0.50x"},
		{10 * time.Millisecond, 0, "-"},
	}
	for _, tt := range tests {
		if got := FormatSpeedup(tt.base, tt.d); got != tt.want {
			t.Errorf("FormatSpeedup(%v, %v) = %q, want %q", tt.base, tt.d, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		b    uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.b); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.b, got, tt.want)
		}
	}
}
