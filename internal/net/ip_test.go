package net

import (
	"net"
	"testing"
)

func TestGetOutgoingIP(t *testing.T) {
	if ip := net.ParseIP(GetOutgoingIP()); ip == nil {
		t.Errorf("GetOutgoingIP() is not an IP address")
	}
}

func TestShareLink(t *testing.T) {
	link := ShareLink("10.0.0.5", 8888)
	if link != "localpaint://10.0.0.5:8888" {
		t.Fatalf("ShareLink() = %q", link)
	}
	url, err := WebSocketURL(link + "/")
	if err != nil {
		t.Fatal(err)
	}
	if url != "ws://10.0.0.5:8888/ws" {
		t.Errorf("WebSocketURL() = %q", url)
	}
	if _, err := WebSocketURL("localpaint://nohost"); err == nil {
		t.Error("WebSocketURL accepted a link without port")
	}
}
