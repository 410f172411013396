package optmap_test

import (
	stderrs "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optmap/optmap"
	clierr "github.com/optmap/optmap/errors"
)

func TestParse_FromProcessArgs(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"mycmd", "--name", "Alice", "-a", "30"}

	cfg := struct {
		optmap.Meta `name:"mycmd"`

		Name string `flag:"--name" short:"-n" help:"User name"`
		Age  int    `flag:"--age" short:"-a" help:"Age of the user"`
	}{}

	err := optmap.Parse(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "Alice", cfg.Name)
	assert.Equal(t, 30, cfg.Age)
}

func TestParse_SubcommandDispatch(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "serve", "--port", "9000"}

	type serveCmd struct {
		Invoked bool
		Port    int `flag:"--port" default:"8080"`
	}
	type otherCmd struct {
		Invoked bool
		Flag    bool `flag:"--other-flag"`
	}
	cfg := struct {
		optmap.Meta `name:"app"`

		Serve serveCmd `cmd:"serve"`
		Other otherCmd `cmd:"other"`
	}{}

	err := optmap.Parse(&cfg)
	require.NoError(t, err)
	assert.True(t, cfg.Serve.Invoked)
	assert.Equal(t, 9000, cfg.Serve.Port)
	assert.False(t, cfg.Other.Invoked)
}

func TestParseArgs_FailureTaxonomy(t *testing.T) {
	type cfg struct {
		optmap.Meta `name:"taxonomy"`

		Filename   string `flag:"--filename"`
		Iterations int    `flag:"--iterations" short:"-i"`
	}

	t.Run("unknown flag", func(t *testing.T) {
		c := cfg{}
		err := optmap.ParseArgs(&c, []string{"--badflag", "x"})
		var ue clierr.UnknownFlagError
		require.True(t, stderrs.As(err, &ue))
		assert.Equal(t, "--badflag", ue.Flag)
	})

	t.Run("missing value", func(t *testing.T) {
		c := cfg{}
		err := optmap.ParseArgs(&c, []string{"--filename"})
		var me clierr.MissingValueError
		require.True(t, stderrs.As(err, &me))
		assert.Equal(t, "--filename", me.Flag)
	})

	t.Run("coercion", func(t *testing.T) {
		c := cfg{}
		err := optmap.ParseArgs(&c, []string{"-i", "notanumber"})
		var ce clierr.CoercionError
		require.True(t, stderrs.As(err, &ce))
		assert.Equal(t, "Iterations", ce.Field)
		assert.Equal(t, "notanumber", ce.Value)
	})
}

func TestSchemaFor_PublicQueries(t *testing.T) {
	cfg := struct {
		optmap.Meta `name:"queries"`

		Output string `flag:"--output" short:"-o" help:"Output path"`
	}{}

	schema, err := optmap.SchemaFor(&cfg)
	require.NoError(t, err)
	assert.True(t, schema.Contains("--output"))
	assert.True(t, schema.Contains("-o"))
	assert.False(t, schema.Contains("--input"))

	opt := schema.Resolve("-o")
	require.NotNil(t, opt)
	assert.Equal(t, "Output", opt.Name)
	assert.Equal(t, "Output path", opt.Help)
}

func TestBuildVersion(t *testing.T) {
	cfg := struct {
		optmap.Meta `name:"mycli" version:"2.3.4"`

		Quiet bool `flag:"--quiet"`
	}{}

	version, err := optmap.BuildVersion(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "mycli v2.3.4", version)
}

func TestBuildHelp_Basic(t *testing.T) {
	cfg := struct {
		optmap.Meta `name:"testapp"`

		Foo string `flag:"--foo" short:"-f" help:"A foo flag"`
	}{}

	help, err := optmap.BuildHelp(&cfg, false)
	require.NoError(t, err)
	assert.Contains(t, help, "testapp")
	assert.Contains(t, help, "-f, --foo <FOO>")
	assert.Contains(t, help, "A foo flag")
}
