package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/chainmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose      bool
	Multichannel bool
}

const (
	envChains       = "CHAINMENU_CHAINS"
	envChain        = "CHAINMENU_CHAIN"
	envWidth        = "CHAINMENU_WIDTH"
	envHeight       = "CHAINMENU_HEIGHT"
	envShowFooter   = "CHAINMENU_FOOTER"
	envVerbose      = "CHAINMENU_VERBOSE"
	envTrace        = "CHAINMENU_TRACE"
	envLogFile      = "CHAINMENU_LOG_FILE"
	envMultichannel = "CHAINMENU_MULTICHANNEL_RECORDER"
	envPoll         = "CHAINMENU_POLL_INTERVAL"
)

const defaultPollInterval = 500 * time.Millisecond

// ErrNoSnapshot is returned by Validate when no chain snapshot is configured.
var ErrNoSnapshot = errors.New("no chain snapshot given (use --chains or " + envChains + ")")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("chainmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	chains := fs.String("chains", envOrDefault(env, envChains, ""), "path to the YAML chain snapshot")
	chain := fs.Int("chain", envOrInt(env, envChain, 0), "index of the chain whose options are shown")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	multichannel := fs.Bool("multichannel-recorder", envOrBool(env, envMultichannel, false), "offer per-chain recording prime toggles")
	poll := fs.Duration("poll-interval", envOrDuration(env, envPoll, defaultPollInterval), "how often the graph and recorder are polled")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *poll <= 0 {
		return Config{}, fmt.Errorf("poll-interval must be > 0 (got %s)", *poll)
	}

	cfg := Config{
		App: app.Config{
			SnapshotPath: *chains,
			ChainIndex:   *chain,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
			Multichannel: *multichannel,
			PollInterval: *poll,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:      *verbose,
			Multichannel: *multichannel,
		},
		Flags: map[string]string{
			"chains":               *chains,
			"chain":                strconv.Itoa(*chain),
			"width":                strconv.Itoa(*width),
			"height":               strconv.Itoa(*height),
			"footer":               strconv.FormatBool(*footer),
			"trace":                strconv.FormatBool(*trace),
			"verbose":              strconv.FormatBool(*verbose),
			"logFile":              *logFile,
			"multichannelRecorder": strconv.FormatBool(*multichannel),
			"pollInterval":         poll.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns validated configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err == nil {
		err = Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present. The chain
// index is checked against the snapshot by app.Run.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.SnapshotPath) == "" {
		return ErrNoSnapshot
	}
	return nil
}
