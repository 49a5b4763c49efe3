// Package serverstatus queries multiplayer servers with the server list ping
package serverstatus

import (
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/Tnze/go-mc/bot"
	"github.com/Tnze/go-mc/chat"
	"github.com/minepkg/launchkit/internals/launch"
	"github.com/pkg/errors"
)

// DefaultTimeout is used if Ping gets no timeout
const DefaultTimeout = 5 * time.Second

// Status is the server list response
type Status struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Players struct {
		Max    int `json:"max"`
		Online int `json:"online"`
		Sample []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"sample"`
	} `json:"players"`
	Description chat.Message `json:"description"`
	Favicon     string       `json:"favicon,omitempty"`

	// Delay is the round trip time of the ping
	Delay time.Duration `json:"-"`
}

// MOTD returns the description without formatting codes
func (s *Status) MOTD() string {
	return strings.TrimSpace(s.Description.ClearString())
}

// SplitAddress splits "host" or "host:port". port is 0 if addr has none
func SplitAddress(addr string) (string, int, error) {
	if addr == "" {
		return "", 0, errors.New("empty address")
	}

	host, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		// no port
		return strings.Trim(addr, "[]"), 0, nil
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, errors.Errorf("invalid port %q in %s", rawPort, addr)
	}
	if host == "" {
		return "", 0, errors.Errorf("missing host in %s", addr)
	}
	return host, port, nil
}

// ParseAddress parses "host" or "host:port" into a server. The port
// defaults to launch.DefaultServerPort.
func ParseAddress(addr string) (*launch.Server, error) {
	host, port, err := SplitAddress(addr)
	if err != nil {
		return nil, err
	}
	if port == 0 {
		port = launch.DefaultServerPort
	}
	return &launch.Server{Host: host, Port: port}, nil
}

// Ping asks the server for its status
func Ping(server *launch.Server, timeout time.Duration) (*Status, error) {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	port := server.Port
	if port == 0 {
		port = launch.DefaultServerPort
	}
	addr := net.JoinHostPort(server.Host, strconv.Itoa(port))

	resp, delay, err := bot.PingAndListTimeout(addr, timeout)
	if err != nil {
		return nil, errors.Wrapf(err, "could not ping %s", addr)
	}
	return parseStatus(resp, delay)
}

func parseStatus(raw []byte, delay time.Duration) (*Status, error) {
	status := &Status{Delay: delay}
	if err := json.Unmarshal(raw, status); err != nil {
		return nil, errors.Wrap(err, "invalid status response")
	}
	return status, nil
}
