package main

import (
	"github.com/anchorline/ecrmirror/pkg/cli"
	"github.com/anchorline/ecrmirror/pkg/util/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err := cmd.Execute(); err != nil {
		console.Fatalf("%s", err)
	}
}
