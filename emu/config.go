package emu

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/kirsle/configdir"

	"nescore/emu/log"
)

type Config struct {
	Emulation EmulationConfig `toml:"emulation"`
	Video     VideoConfig     `toml:"video"`
	Input     InputConfig     `toml:"input"`
	Debug     DebugConfig     `toml:"debug"`

	TraceOut io.Writer `toml:"-"`
}

type EmulationConfig struct {
	// Number of frames to run, 0 runs until stopped.
	Frames int64 `toml:"frames"`
	// If not zero, PC is set to StartPC after power up instead of the
	// reset vector.
	StartPC uint16 `toml:"start_pc"`
	// Execution trace file, none if empty.
	TraceFile string `toml:"trace_file"`
	// Game Genie or AAAA:VV cheat codes.
	Cheats []string `toml:"cheats"`
}

type VideoConfig struct {
	// Directory where frames are saved as PNG, none if empty.
	DumpDir string `toml:"dump_dir"`
	// Save one frame every DumpEvery frames. With 0 only the last frame is
	// saved.
	DumpEvery int64 `toml:"dump_every"`
}

type InputConfig struct {
	// Path of the input script.
	Script string `toml:"script"`
}

type DebugConfig struct {
	// Port of the RPC server, disabled if 0.
	RPCPort int `toml:"rpc_port"`
	// Comma-separated list of modules with debug logs enabled.
	Log string `toml:"log"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Debug: DebugConfig{
			Log: "no",
		},
	}
}

var ConfigDir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("nescore")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

const cfgFilename = "config.toml"

// LoadConfig loads the configuration at path. Missing settings keep their
// default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), errors.Wrapf(err, "config %s", path)
	}
	for _, key := range md.Undecoded() {
		log.ModEmu.WarnZ("unknown config setting").String("key", key.String()).String("path", path).End()
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration from the nescore config
// directory, or provides the default one.
func LoadConfigOrDefault() Config {
	path := filepath.Join(ConfigDir(), cfgFilename)
	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.ModEmu.WarnZ("failed to load config, using default").Error("err", err).End()
		}
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig saves cfg at path, or into the nescore config directory if
// path is empty.
func SaveConfig(cfg Config, path string) error {
	if path == "" {
		path = filepath.Join(ConfigDir(), cfgFilename)
	}
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
