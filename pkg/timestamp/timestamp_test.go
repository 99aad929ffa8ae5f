package timestamp

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "simple", raw: "0:00:05.0", want: "0:00:05.0"},
		{name: "multi-digit hours", raw: "123:45:06.5", want: "123:45:06.5"},
		{name: "long fraction", raw: "0:00:10.123456789", want: "0:00:10.123456789"},
		{name: "fraction beyond nanos truncated", raw: "0:00:10.1234567891111", want: "0:00:10.123456789"},
		{name: "missing fraction", raw: "0:00:10", wantErr: true},
		{name: "single-digit minutes", raw: "0:0:10.0", wantErr: true},
		{name: "minutes out of range", raw: "0:61:10.0", wantErr: true},
		{name: "seconds out of range", raw: "0:00:99.0", wantErr: true},
		{name: "trailing garbage", raw: "0:00:10.5x", wantErr: true},
		{name: "not a timestamp", raw: "sourcebuffer", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				var terr *InvalidTimestampError
				if !errors.As(err, &terr) {
					t.Fatalf("Parse(%q) error type = %T, want *InvalidTimestampError", tt.raw, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.raw, got.String(), tt.want)
			}
		})
	}
}

func TestTimestamp_Ordering(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "0:00:10.0", b: "0:00:10.000", want: 0},
		{name: "seconds differ", a: "0:00:09.9", b: "0:00:10.0", want: -1},
		{name: "fraction differs", a: "0:00:10.25", b: "0:00:10.5", want: -1},
		{name: "hours dominate", a: "2:00:00.0", b: "1:59:59.999", want: 1},
		{name: "minutes dominate", a: "0:10:00.0", b: "0:09:59.9", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.a)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.a, err)
			}
			b, err := Parse(tt.b)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.b, err)
			}
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := a.Before(b); got != (tt.want < 0) {
				t.Errorf("Before(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want < 0)
			}
			if got := a.After(b); got != (tt.want > 0) {
				t.Errorf("After(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want > 0)
			}
		})
	}
}

func TestExtractLeading(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{
			name:   "timestamped log line",
			line:   "0:00:05.0 sourcebuffer true",
			want:   "0:00:05.0",
			wantOK: true,
		},
		{
			name:   "timestamp with long fraction",
			line:   "1:02:03.456789 appsrc push",
			want:   "1:02:03.456789",
			wantOK: true,
		},
		{
			name:   "timestamp flush against text",
			line:   "0:00:05.0sourcebuffer",
			want:   "0:00:05.0",
			wantOK: true,
		},
		{name: "no timestamp", line: "sourcebuffer true"},
		{name: "timestamp mid-line only", line: "at 0:00:05.0 something"},
		{name: "bare clock without fraction", line: "0:00:05 something"},
		{name: "empty line", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLeading(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ExtractLeading(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got.String() != tt.want {
				t.Errorf("ExtractLeading(%q) = %q, want %q", tt.line, got.String(), tt.want)
			}
		})
	}
}
