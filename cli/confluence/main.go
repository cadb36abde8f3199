package main

import (
	"fmt"
	"os"

	confluencecmder "github.com/grandcamel/confluence-assistant-skills/cmd/confluence"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
)

func main() {
	cmd := confluencecmder.NewConfluenceCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", cliui.FailMark, err)
		os.Exit(1)
	}
}
