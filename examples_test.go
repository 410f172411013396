package optmap_test

import (
	"fmt"
	"os"

	stderrors "errors"

	"github.com/optmap/optmap"
	"github.com/optmap/optmap/errors"
)

func Example_readme() {
	// Simulate command line arguments
	os.Args = []string{"mytool", "--filename", "out.txt", "-i", "5"}

	cfg := struct {
		optmap.Meta `name:"mytool" version:"1.2.3"` // Tool name and version

		Filename   string `flag:"--filename" short:"-f" help:"Output file path"`
		Iterations int    `flag:"--iterations" short:"-i" help:"Iteration count"`
	}{}

	err := optmap.Parse(&cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Filename: %s\n", cfg.Filename)
	fmt.Printf("Iterations: %d\n", cfg.Iterations)
	// Output: Filename: out.txt
	// Iterations: 5
}

func Example_unknownFlag() {
	cfg := struct {
		optmap.Meta `name:"strict"`

		Filename string `flag:"--strict-filename"`
	}{}

	err := optmap.ParseArgs(&cfg, []string{"--badflag", "x"})

	var ue errors.UnknownFlagError
	if stderrors.As(err, &ue) {
		fmt.Printf("unknown flag %s at position %d\n", ue.Flag, ue.Position)
	}
	// Output: unknown flag --badflag at position 0
}

func Example_defaults() {
	cfg := struct {
		optmap.Meta `name:"defaulted"`

		Level   string `flag:"--default-level" default:"info"`
		Retries int    `flag:"--default-retries" default:"3"`
	}{}

	if err := optmap.ParseArgs(&cfg, []string{"--default-level", "debug"}); err != nil {
		panic(err)
	}

	fmt.Printf("Level: %s, Retries: %d\n", cfg.Level, cfg.Retries)
	// Output: Level: debug, Retries: 3
}

func Example_subcommand() {
	// Simulate command line arguments
	os.Args = []string{"app", "serve", "--port", "9000"}

	type serveCmd struct {
		Invoked bool
		Port    int `flag:"--port" short:"-p" default:"8080"`
	}
	cfg := struct {
		optmap.Meta `name:"app"`

		Serve serveCmd `cmd:"serve" help:"Start the server"`
	}{}

	if err := optmap.Parse(&cfg); err != nil {
		panic(err)
	}

	if cfg.Serve.Invoked {
		fmt.Printf("serving on port %d\n", cfg.Serve.Port)
	}
	// Output: serving on port 9000
}
