// Package config parses the command line.
package config

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"strings"

	"LocalPaint/internal/state"
)

const (
	DefaultPort   = 8888
	DefaultWidth  = 1024
	DefaultHeight = 768
)

type Config struct {
	Port   int
	Width  float32
	Height float32
	// Share serves the hub and advertises it over mDNS when hosting.
	Share bool
	// Join is a share link; a non-empty value runs as a client.
	Join string
	// Discover finds a host over mDNS when Join is empty.
	Discover bool
	// Snapshot, if set, receives the canvas on exit. A .pdf suffix selects
	// PDF, anything else is written as PNG.
	Snapshot string
	Color    color.NRGBA
	Size     int
}

func (c Config) Client() bool { return c.Join != "" || c.Discover }

// Parse reads args (without the program name). A first argument starting
// with the share link scheme selects client mode, as if -join were given.
func Parse(args []string, scheme string, output io.Writer) (Config, error) {
	cfg := Config{}
	if len(args) > 0 && strings.HasPrefix(args[0], scheme) {
		cfg.Join = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("localpaint", flag.ContinueOnError)
	fs.SetOutput(output)
	port := fs.Int("port", DefaultPort, "Port the hub listens on when hosting")
	width := fs.Int("width", DefaultWidth, "Initial window width")
	height := fs.Int("height", DefaultHeight, "Initial window height")
	share := fs.Bool("share", true, "Serve and advertise the board on the LAN")
	join := fs.String("join", cfg.Join, "Share link of a host to join")
	discover := fs.Bool("discover", false, "Join the first host found on the LAN")
	snapshot := fs.String("snapshot", "", "Save the canvas to this file on exit (.png or .pdf)")
	hex := fs.String("color", state.HexColor(state.DefaultBrushColor), "Initial brush color")
	size := fs.Int("size", state.DefaultBrushSize, "Initial brush size")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *port <= 0 || *port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", *port)
	}
	if *width <= 0 || *height <= 0 {
		return Config{}, fmt.Errorf("invalid window size %dx%d", *width, *height)
	}
	if *size < 1 {
		return Config{}, fmt.Errorf("brush size must be at least 1, got %d", *size)
	}
	c, err := state.ParseHexColor(*hex)
	if err != nil {
		return Config{}, err
	}
	if *join != "" && !strings.HasPrefix(*join, scheme) {
		*join = scheme + *join
	}

	cfg.Port = *port
	cfg.Width, cfg.Height = float32(*width), float32(*height)
	cfg.Share = *share
	cfg.Join = *join
	cfg.Discover = *discover && *join == ""
	cfg.Snapshot = *snapshot
	cfg.Color = c
	cfg.Size = *size
	return cfg, nil
}
