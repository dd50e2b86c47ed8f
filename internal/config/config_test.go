package config

import (
	"image/color"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"LocalPaint/internal/state"
)

const scheme = "localpaint://"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults",
			want: Config{Port: 8888, Width: 1024, Height: 768, Share: true, Color: state.DefaultBrushColor, Size: 10},
		},
		{
			name: "link argument",
			args: []string{"localpaint://10.0.0.2:8888"},
			want: Config{Port: 8888, Width: 1024, Height: 768, Share: true, Join: "localpaint://10.0.0.2:8888", Color: state.DefaultBrushColor, Size: 10},
		},
		{
			name: "flags",
			args: []string{"-port", "9000", "-share=false", "-color", "#00ff00", "-size", "3", "-join", "host:1"},
			want: Config{Port: 9000, Width: 1024, Height: 768, Join: "localpaint://host:1", Color: color.NRGBA{G: 0xff, A: 0xff}, Size: 3},
		},
		{
			name: "discover and snapshot",
			args: []string{"-discover", "-snapshot", "out.pdf"},
			want: Config{Port: 8888, Width: 1024, Height: 768, Share: true, Discover: true, Snapshot: "out.pdf", Color: state.DefaultBrushColor, Size: 10},
		},
		{
			name: "join wins over discover",
			args: []string{"-discover", "-join", "host:1"},
			want: Config{Port: 8888, Width: 1024, Height: 768, Share: true, Join: "localpaint://host:1", Color: state.DefaultBrushColor, Size: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args, scheme, io.Discard)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{"-port", "0"},
		{"-size", "0"},
		{"-color", "red"},
		{"-width", "-1"},
		{"-nope"},
	} {
		if _, err := Parse(args, scheme, io.Discard); err == nil {
			t.Errorf("Parse(%q) succeeded", args)
		}
	}
}

func TestConfig_Client(t *testing.T) {
	if (Config{}).Client() {
		t.Error("empty config is a client")
	}
	if !(Config{Join: "localpaint://a:1"}).Client() {
		t.Error("config with Join is not a client")
	}
	if !(Config{Discover: true}).Client() {
		t.Error("discovering config is not a client")
	}
}
