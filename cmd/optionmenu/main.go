package main

import (
	"os"

	"github.com/inappwebview/optionmenu/internal/cli"
	"github.com/inappwebview/optionmenu/internal/demo"
)

func main() {
	if err := cli.Execute(demo.NewCmd); err != nil {
		os.Exit(1)
	}
}
