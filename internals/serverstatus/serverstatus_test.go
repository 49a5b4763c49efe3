package serverstatus

import (
	"net"
	"testing"
	"time"

	"github.com/minepkg/launchkit/internals/launch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		addr    string
		want    *launch.Server
		wantErr bool
	}{
		{"mc.example.com", &launch.Server{Host: "mc.example.com", Port: 25565}, false},
		{"mc.example.com:25566", &launch.Server{Host: "mc.example.com", Port: 25566}, false},
		{"127.0.0.1:1", &launch.Server{Host: "127.0.0.1", Port: 1}, false},
		{"[::1]:25565", &launch.Server{Host: "::1", Port: 25565}, false},
		{"mc.example.com:nope", nil, true},
		{"mc.example.com:70000", nil, true},
		{":25565", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got, err := ParseAddress(tt.addr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	raw := []byte(`{
		"version": {"name": "1.19.2", "protocol": 760},
		"players": {"max": 20, "online": 1, "sample": [{"id": "4566e69f-c907-48ee-8d71-d7ba5aa00d20", "name": "Alice"}]},
		"description": {"text": "Hello ", "extra": [{"text": "world", "bold": true}]}
	}`)

	status, err := parseStatus(raw, 42*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "1.19.2", status.Version.Name)
	assert.Equal(t, 760, status.Version.Protocol)
	assert.Equal(t, 1, status.Players.Online)
	assert.Equal(t, "Alice", status.Players.Sample[0].Name)
	assert.Equal(t, "Hello world", status.MOTD())
	assert.Equal(t, 42*time.Millisecond, status.Delay)
}

func TestParseStatus_PlainDescription(t *testing.T) {
	status, err := parseStatus([]byte(`{"description": "A Minecraft Server"}`), 0)
	require.NoError(t, err)
	assert.Equal(t, "A Minecraft Server", status.MOTD())
}

func TestPing_Unreachable(t *testing.T) {
	// grab a free port and close it again
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	_, err = Ping(&launch.Server{Host: "127.0.0.1", Port: port}, time.Second)
	assert.Error(t, err)
}

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		addr     string
		wantHost string
		wantPort int
	}{
		{"proxy.local", "proxy.local", 0},
		{"proxy.local:3128", "proxy.local", 3128},
		{"[::1]", "::1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			host, port, err := SplitAddress(tt.addr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}
