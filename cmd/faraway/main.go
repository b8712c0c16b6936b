package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/faraway/internal/cli"
	"github.com/Makepad-fr/faraway/internal/config"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	group := flag.Bool("group", false, "group list output by pending/packed")
	flag.Parse()

	code := cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		Theme:      *theme,
		Group:      *group,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
