package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/optmap/optmap"
)

type ServeCmd struct {
	optmap.Help

	Invoked bool

	Port    int  `flag:"--port" short:"-p" help:"Port to listen on" default:"8080"`
	Verbose bool `flag:"--verbose" short:"-v" help:"Enable verbose output"`
}

type CLIArgs struct {
	optmap.Meta `name:"app" version:"0.1.0"`
	optmap.Help
	optmap.Version

	Filename   string `flag:"--filename" short:"-f" help:"Input file" required:"true"`
	Iterations int    `flag:"--iterations" short:"-i" help:"Iteration count" default:"1"`

	Serve ServeCmd `cmd:"serve" help:"Start the server"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	args := &CLIArgs{}
	if err := optmap.Parse(args); err != nil {
		logger.Error("argument parsing failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed Arguments: %+v\n", args)
}
