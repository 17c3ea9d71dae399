package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"mad-contour/internal/contour"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Later keys win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("override %q is not in key=value form", kv)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Scene   string
	Scale   int
	TPS     int
	Seed    int64
	ViewW   int
	ViewH   int
	Verbose bool
	Set     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scene: "scatter", Scale: 3, TPS: 60, Seed: 1337, ViewW: 320, ViewH: 180}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to load")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scene layout")
	fs.IntVar(&c.ViewW, "view-w", c.ViewW, "camera width in world units")
	fs.IntVar(&c.ViewH, "view-h", c.ViewH, "camera height in world units")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log field activity to stderr")
	fs.Var(&c.Set, "set", "field or scene override in key=value form (repeatable)")
}

// Overrides returns the -set pairs with the seed flag folded in unless a
// seed override was given explicitly.
func (c *Config) Overrides() (map[string]string, error) {
	m, err := c.Set.Map()
	if err != nil {
		return nil, err
	}
	if _, ok := m["seed"]; !ok {
		m["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return m, nil
}

// SetupLogging routes field logs to stderr when verbose output was asked for.
func (c *Config) SetupLogging() {
	if !c.Verbose {
		return
	}
	contour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
