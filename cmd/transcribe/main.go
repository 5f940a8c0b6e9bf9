package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	transcribe "github.com/mutablelogic/go-transcribe"
	zerolog "github.com/rs/zerolog"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	ModelDir string `name:"model-dir" help:"Directory for model weights (can be set from TRANSCRIBE_MODEL_DIR env)" default:"${TRANSCRIBE_MODEL_DIR}"`
	Debug    bool   `name:"debug" help:"Enable debug output"`

	// Writer, logger and context
	writer *tablewriter.Writer
	log    zerolog.Logger
	ctx    context.Context
}

type CLI struct {
	Globals

	Transcribe TranscribeCmd `cmd:"" default:"withargs" help:"Transcribe an audio file"`
	Models     ModelsCmd     `cmd:"" help:"List downloaded models"`
	Download   DownloadCmd   `cmd:"" help:"Download model weights"`
	Delete     DeleteCmd     `cmd:"" help:"Delete model weights"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("offline speech transcription with speaker diarization"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"TRANSCRIBE_MODEL_DIR": envOrDefault("TRANSCRIBE_MODEL_DIR", defaultModelDir()),
			"TRANSCRIBE_MODEL":     envOrDefault("TRANSCRIBE_MODEL", transcribe.DefaultModel),
		},
	)

	// Create a logger on stderr, so that transcript output on stdout stays
	// machine-readable
	level := zerolog.InfoLevel
	if cli.Globals.Debug {
		level = zerolog.DebugLevel
	}
	cli.Globals.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	// Create a tablewriter object with text output
	cli.Globals.writer = tablewriter.New(os.Stdout, tablewriter.OptOutputText())

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

func envOrDefault(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	} else {
		return def
	}
}

func defaultModelDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".transcribe/models"
	}
	return filepath.Join(home, ".transcribe", "models")
}
