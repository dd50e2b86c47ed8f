package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"fyne.io/fyne/v2"

	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	lpnet "LocalPaint/internal/net"
	"LocalPaint/internal/state"
	"LocalPaint/internal/surface"
	"LocalPaint/internal/ui"
)

const (
	outboxSize      = 256
	discoverTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Parse(os.Args[1:], lpnet.Scheme, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("localpaint: %v", err)
	}

	a, win := ui.NewWindow("LocalPaint", fyne.NewSize(cfg.Width, cfg.Height))

	// Everything below is wired exactly once, here.
	surf := surface.New(int(cfg.Width), int(cfg.Height))
	engine := state.NewEngine(surf)
	engine.SetColor(cfg.Color)
	engine.SetSize(cfg.Size)

	paint := ui.NewPaintWidget(surf, engine)
	options := ui.NewBrushOptions()
	tools := ui.NewToolsPanel(paint, options.Container())
	coord := state.NewCoordinator(engine, tools, options.SizeViews()...)
	tools.Bind(coord, ui.NewColorPicker(win))
	options.Bind(coord)
	coord.Sync()

	status := ui.NewStatusBar()
	files := ui.NewFilePanel(win, surf, paint, status)

	session := ui.NewSession(state.NewOpLog(), engine, surf, paint)
	engine.OnStroke = session.LocalStroke
	files.OnImport = session.LocalImage

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go func() {
		<-ctx.Done()
		fyne.Do(a.Quit)
	}()

	var link string
	switch {
	case cfg.Client():
		go runClient(ctx, cfg.Join, session, status)
	case cfg.Share:
		link = runHost(ctx, cfg.Port, session, status)
	default:
		log.Println("Starting without sharing")
	}

	win.SetContent(ui.Layout(tools, options, files, paint, status, link))
	win.ShowAndRun()

	if cfg.Snapshot != "" {
		if err := saveSnapshot(cfg.Snapshot, surf); err != nil {
			log.Printf("snapshot: %v", err)
		}
	}
}

func saveSnapshot(path string, surf *surface.Surface) error {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return export.SavePDF(path, surf.Image())
	}
	return export.SavePNG(path, surf.Image())
}

// discover returns the share link of the first host that answers on the LAN.
func discover(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, discoverTimeout)
	defer cancel()

	var addr string
	err := lpnet.Browse(ctx, discoverTimeout, func(a string) {
		if addr == "" {
			addr = a
			log.Printf("[CLIENT] found host %s", a)
		}
	})
	if addr != "" {
		return lpnet.Scheme + addr, nil
	}
	if err == nil || errors.Is(err, context.DeadlineExceeded) {
		err = errors.New("no host found on the LAN")
	}
	return "", err
}

func runHost(ctx context.Context, port int, session *ui.Session, status *ui.StatusBar) string {
	log.Println("Starting as HOST")
	hub := lpnet.NewHub()
	hub.OnMessage = func(m lpnet.Message) {
		fyne.Do(func() { session.Apply(m) })
	}
	hub.OnJoin = func(addr string) { status.SetStatus("Peer joined from " + addr) }
	hub.OnLeave = func(addr string) { status.SetStatus("Peer left: " + addr) }
	session.Send = hub.Broadcast

	go func() {
		if err := lpnet.ListenAndServe(ctx, fmt.Sprintf(":%d", port), hub); err != nil {
			status.SetStatus(fmt.Sprintf("Sharing unavailable: %v", err))
		}
	}()

	server, err := lpnet.Advertise(port)
	if err != nil {
		log.Printf("[HOST] not advertising on the LAN: %v", err)
	} else {
		go func() {
			<-ctx.Done()
			server.Shutdown()
		}()
	}

	return lpnet.ShareLink(lpnet.GetOutgoingIP(), port)
}

func runClient(ctx context.Context, link string, session *ui.Session, status *ui.StatusBar) {
	log.Println("Starting as CLIENT")
	if link == "" {
		status.SetStatus("Looking for a host on the LAN")
		found, err := discover(ctx)
		if err != nil {
			status.SetStatus(fmt.Sprintf("Discovery failed: %v", err))
			return
		}
		link = found
	}
	url, err := lpnet.WebSocketURL(link)
	if err != nil {
		status.SetStatus(err.Error())
		return
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	client, err := lpnet.Dial(dialCtx, url)
	cancel()
	if err != nil {
		status.SetStatus(fmt.Sprintf("Connection failed: %v", err))
		return
	}
	defer client.Close()
	status.SetStatus("Connected to host as " + client.LocalAddr())

	outbox := make(chan lpnet.Message, outboxSize)
	go func() {
		for m := range outbox {
			if err := client.Send(m); err != nil {
				log.Printf("[CLIENT] %v", err)
			}
		}
	}()
	fyne.DoAndWait(func() {
		session.Send = func(m lpnet.Message) {
			select {
			case outbox <- m:
			default:
				log.Printf("[CLIENT] outbox full, dropping %s", m.Type)
			}
		}
	})
	go func() {
		<-ctx.Done()
		client.Close()
	}()

	err = client.Receive(func(m lpnet.Message) {
		fyne.Do(func() { session.Apply(m) })
	})
	fyne.DoAndWait(func() { session.Send = nil })
	close(outbox)
	status.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
}
