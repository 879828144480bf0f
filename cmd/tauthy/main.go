package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !cfg.Colours {
		color.Enable = false
	}
	if err := newRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint("error: ")+describe(err))
		os.Exit(1)
	}
}
