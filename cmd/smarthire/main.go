package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/smarthire/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configFile := flag.String("config", "", "path to a config file")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, flag.Args(), cli.Options{
		ConfigFile: *configFile,
		Theme:      *theme,
		NoColor:    *noColor,
	})
	stop()
	os.Exit(code)
}
