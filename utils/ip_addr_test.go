package utils_test

import (
	"net"
	"net/http"
	"testing"

	"github.com/volunteerhub/volunteerhub-api/utils"
)

func TestGetIpAddressPrefersHeaders(t *testing.T) {
	header := http.Header{}
	header.Set("CF-Connecting-IP", "203.0.113.7")
	addr := &net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 1234}

	if ip := utils.GetIpAddress(header, addr); ip != "203.0.113.7" {
		t.Fatalf("expected CF header to win, got %s", ip)
	}

	header = http.Header{}
	header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.2")
	if ip := utils.GetIpAddress(header, addr); ip != "198.51.100.4" {
		t.Fatalf("expected first forwarded hop, got %s", ip)
	}
}

func TestGetIpAddressFallsBackToAddr(t *testing.T) {
	addr := &net.TCPAddr{IP: net.ParseIP("192.0.2.9"), Port: 9999}
	if ip := utils.GetIpAddress(nil, addr); ip != "192.0.2.9" {
		t.Fatalf("expected addr IP, got %s", ip)
	}
	if ip := utils.GetIpAddress(nil, nil); ip != "" {
		t.Fatalf("expected empty string for nil addr, got %s", ip)
	}
}
