package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/idilsaglam/listkeeper/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	group := flag.Bool("group", false, "group print output by selected/unselected")
	configPath := flag.String("config", "", "config file (default $LISTKEEPER_CONFIG or ~/.config/listkeeper/config.toml)")
	backend := flag.String("backend", "", "storage backend: json, sqlite or memory")
	dir := flag.String("dir", "", "storage directory")
	theme := flag.String("theme", "", "theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colour output")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		args = []string{"ls"}
	}

	code := cli.Run(args, cli.Options{
		Group:      *group,
		ConfigPath: *configPath,
		Backend:    *backend,
		Dir:        *dir,
		Theme:      *theme,
		NoColor:    *noColor,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
