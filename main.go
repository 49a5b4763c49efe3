package main

import (
	"net/http"

	"github.com/minepkg/launchkit/cmd"
	"github.com/minepkg/launchkit/internals/ownhttp"
)

// set by goreleaser
var (
	version string
	commit  string
)

func main() {
	// replace default http client
	http.DefaultClient = ownhttp.New()

	cmd.Version = version
	cmd.Commit = commit
	cmd.Execute()
}
