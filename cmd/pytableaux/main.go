// Command pytableaux is the CLI entrypoint: it wires internal/cliapp's
// command tree to the registered logics and runs it.
package main

import (
	"fmt"
	"os"

	"github.com/owings1/pytableaux/internal/cliapp"

	_ "github.com/owings1/pytableaux/pkg/logic/b3e"
	_ "github.com/owings1/pytableaux/pkg/logic/cpl"
	_ "github.com/owings1/pytableaux/pkg/logic/fde"
	_ "github.com/owings1/pytableaux/pkg/logic/g3"
	_ "github.com/owings1/pytableaux/pkg/logic/go3"
	_ "github.com/owings1/pytableaux/pkg/logic/k3"
	_ "github.com/owings1/pytableaux/pkg/logic/k3w"
	_ "github.com/owings1/pytableaux/pkg/logic/k3wq"
	_ "github.com/owings1/pytableaux/pkg/logic/l3"
	_ "github.com/owings1/pytableaux/pkg/logic/lp"
	_ "github.com/owings1/pytableaux/pkg/logic/mh"
	_ "github.com/owings1/pytableaux/pkg/logic/modal"
	_ "github.com/owings1/pytableaux/pkg/logic/nh"
	_ "github.com/owings1/pytableaux/pkg/logic/p3"
	_ "github.com/owings1/pytableaux/pkg/logic/rm3"
)

// version, buildDate, and gitCommit are overridden at build time via
// -ldflags "-X main.version=... -X main.buildDate=... -X main.gitCommit=...".
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

func main() {
	cliapp.Version = version
	cliapp.BuildDate = buildDate
	cliapp.GitCommit = gitCommit

	root := cliapp.NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
