package net

import (
	"fmt"
	"log"
	"net"
	"strings"
)

// Scheme prefixes share links handed to peers, e.g. localpaint://10.0.0.5:8888
const Scheme = "localpaint://"

// GetOutgoingIP finds the preferred local IP address for the host to share.
func GetOutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// Offline networks still have a LAN address on some interface.
		return firstIPv4().String()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// firstIPv4 returns the first non-loopback IPv4 address that is up.
func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("[NET] list interfaces: %v", err)
		return net.IPv4(127, 0, 0, 1)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	log.Println("[NET] no LAN address found, share link will use loopback")
	return net.IPv4(127, 0, 0, 1)
}

// ShareLink builds the link a peer passes on its command line.
func ShareLink(host string, port int) string {
	return fmt.Sprintf("%s%s", Scheme, net.JoinHostPort(host, fmt.Sprint(port)))
}

// WebSocketURL turns a share link (or a bare host:port) into the hub URL.
func WebSocketURL(link string) (string, error) {
	addr := strings.TrimSuffix(strings.TrimPrefix(link, Scheme), "/")
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", fmt.Errorf("invalid share link %q: %w", link, err)
	}
	return "ws://" + addr + HubPath, nil
}
