package launch

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/minepkg/launchkit/internals/minecraft"
)

func manifest(t testing.TB, raw string) *minecraft.LaunchManifest {
	t.Helper()
	m := &minecraft.LaunchManifest{}
	if err := json.Unmarshal([]byte(raw), m); err != nil {
		t.Fatal(err)
	}
	return m
}

const legacyVersion = `{
	"id": "1.12.2",
	"type": "release",
	"assets": "1.12",
	"assetIndex": {"id": "1.12"},
	"mainClass": "net.minecraft.client.main.Main",
	"minecraftArguments": "--username ${auth_player_name} --version ${version_name} --gameDir ${game_directory} --assetsDir ${assets_root} --assetIndex ${assets_index_name} --uuid ${auth_uuid} --accessToken ${auth_access_token} --userType ${user_type} --versionType ${version_type}"
}`

const modernVersion = `{
	"id": "1.19.2",
	"type": "release",
	"assets": "1.19",
	"assetIndex": {"id": "1.19"},
	"mainClass": "net.minecraft.client.main.Main",
	"arguments": {
		"game": [
			"--username", "${auth_player_name}",
			"--accessToken", "${auth_access_token}",
			"--clientId", "${clientid}",
			{"rules": [{"action": "allow", "features": {"is_demo_user": true}}], "value": "--demo"},
			{"rules": [{"action": "allow", "os": {"name": "osx"}}], "value": ["--macos", "only"]}
		]
	}
}`

func testOptions() *Options {
	return &Options{
		Root: filepath.FromSlash("/games/mc"),
		OS:   "linux",
		Arch: "amd64",
		Credential: Credential{
			AccessToken:    "token",
			ClientToken:    "client",
			UUID:           "0000-1111",
			Name:           "Alice",
			UserProperties: "{}",
		},
		Version: Version{Number: "1.12.2", Type: "release"},
	}
}

func TestBuildArguments_Substitution(t *testing.T) {
	version := manifest(t, legacyVersion)
	args := BuildArguments(version, nil, testOptions())

	want := []string{
		"--username", "Alice",
		"--version", "1.12.2",
		"--gameDir", filepath.FromSlash("/games/mc"),
		"--assetsDir", filepath.FromSlash("/games/mc/assets"),
		"--assetIndex", "1.12",
		"--uuid", "0000-1111",
		"--accessToken", "token",
		"--userType", "mojang",
		"--versionType", "release",
	}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("got %q\nwant %q", args, want)
	}
}

func TestBuildArguments_LegacyAssetsRoot(t *testing.T) {
	tests := []struct {
		layout string
		want   string
	}{
		{"legacy", "/games/mc/assets/legacy"},
		{"pre-1.6", "/games/mc/assets/legacy"},
		{"1.7.10", "/games/mc/assets"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			version := manifest(t, fmt.Sprintf(`{"assets":%q,"minecraftArguments":"${game_assets} ${assets_root} a b c"}`, tt.layout))
			args := BuildArguments(version, nil, testOptions())
			want := filepath.FromSlash(tt.want)
			if args[0] != want || args[1] != want {
				t.Errorf("got %q, want %q", args[:2], want)
			}
		})
	}
}

func TestBuildArguments_UnknownPlaceholderPassesThrough(t *testing.T) {
	version := manifest(t, `{"minecraftArguments":"--width ${resolution_width} --name ${auth_player_name} x"}`)
	args := BuildArguments(version, nil, testOptions())

	want := []string{"--width", "${resolution_width}", "--name", "Alice", "x"}
	if !reflect.DeepEqual(args, want) {
		t.Fatalf("got %q, want %q", args, want)
	}
}

func TestBuildArguments_StructuredRules(t *testing.T) {
	tests := []struct {
		os   string
		want []string
	}{
		{"linux", []string{"--username", "Alice", "--accessToken", "token", "--clientId", "client"}},
		{"darwin", []string{"--username", "Alice", "--accessToken", "token", "--clientId", "client", "--macos", "only"}},
	}

	for _, tt := range tests {
		t.Run(tt.os, func(t *testing.T) {
			opts := testOptions()
			opts.OS = tt.os
			args := BuildArguments(manifest(t, modernVersion), nil, opts)
			if !reflect.DeepEqual(args, tt.want) {
				t.Errorf("got %q, want %q", args, tt.want)
			}
		})
	}
}

func TestBuildArguments_Server(t *testing.T) {
	tests := []struct {
		name   string
		server *Server
		want   []string
	}{
		{"default port", &Server{Host: "mc.example.com"}, []string{"--server", "mc.example.com", "--port", "25565"}},
		{"custom port", &Server{Host: "mc.example.com", Port: 25566}, []string{"--server", "mc.example.com", "--port", "25566"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			opts.Server = tt.server
			args := BuildArguments(manifest(t, legacyVersion), nil, opts)
			got := args[len(args)-4:]
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildArguments_Proxy(t *testing.T) {
	opts := testOptions()
	opts.Server = &Server{Host: "mc.example.com"}
	opts.Proxy = &Proxy{Host: "proxy.local", Username: "bob", Password: "secret"}
	args := BuildArguments(manifest(t, legacyVersion), nil, opts)

	want := []string{
		"--server", "mc.example.com", "--port", "25565",
		"--proxyHost", "proxy.local", "--proxyPort", "8080", "--proxyUser", "bob", "--proxyPass", "secret",
	}
	got := args[len(args)-len(want):]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildArguments_Overlay(t *testing.T) {
	version := manifest(t, legacyVersion)
	base := BuildArguments(version, nil, testOptions())

	t.Run("short overlay gets base arguments", func(t *testing.T) {
		overlay := manifest(t, `{"arguments":{"game":["--tweakClass","optifine.OptiFineTweaker"]}}`)
		args := BuildArguments(version, overlay, testOptions())
		want := append([]string{"--tweakClass", "optifine.OptiFineTweaker"}, base...)
		if !reflect.DeepEqual(args, want) {
			t.Errorf("got %q\nwant %q", args, want)
		}
	})

	t.Run("complete overlay is used alone", func(t *testing.T) {
		overlay := manifest(t, `{"minecraftArguments":"--username ${auth_player_name} --tweakClass a.B --version ${version_name}"}`)
		args := BuildArguments(version, overlay, testOptions())
		want := []string{"--username", "Alice", "--tweakClass", "a.B", "--version", "1.12.2"}
		if !reflect.DeepEqual(args, want) {
			t.Errorf("got %q, want %q", args, want)
		}
	})

	t.Run("short version without overlay is kept", func(t *testing.T) {
		short := manifest(t, `{"minecraftArguments":"${auth_player_name} ${auth_session}"}`)
		args := BuildArguments(short, nil, testOptions())
		want := []string{"Alice", "token"}
		if !reflect.DeepEqual(args, want) {
			t.Errorf("got %q, want %q", args, want)
		}
	})
}

func ExampleBuildArguments() {
	version := &minecraft.LaunchManifest{MinecraftArguments: "--username ${auth_player_name} --uuid ${auth_uuid}"}
	opts := &Options{
		OS:         "linux",
		Credential: Credential{Name: "Alice", UUID: "069a79f444e94726a5befca90e38aaf5"},
		Server:     &Server{Host: "mc.example.com"},
	}

	fmt.Println(BuildArguments(version, nil, opts))
	// Output: [--username Alice --uuid 069a79f444e94726a5befca90e38aaf5 --server mc.example.com --port 25565]
}
