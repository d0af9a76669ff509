package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"nescore/emu"
	"nescore/emu/log"
)

func main() {
	ctx, cli := parseArgs(os.Args[1:])

	cfg := loadConfig(cli.ConfigPath)
	if cli.Log.set {
		cli.Log.apply()
	} else if cfg.Debug.Log != "" {
		var lm logModMask
		if err := lm.parse(cfg.Debug.Log); err != nil {
			log.ModEmu.WarnZ("invalid log setting in config").Error("err", err).End()
		} else {
			lm.apply()
		}
	}

	switch cmd, _, _ := strings.Cut(ctx.Command(), " "); cmd {
	case "run":
		os.Exit(runMain(cli.Run, cfg))
	case "check":
		os.Exit(checkMain(cli.Check))
	case "disasm":
		checkf(disasmMain(cli.Disasm), "disassembly failed")
	case "rom-infos":
		checkf(romInfosMain(cli.RomInfos), "failed to read rom")
	case "config":
		checkf(configMain(cli.Config, cfg), "config")
	case "version":
		printVersion()
	}
}

func loadConfig(path string) emu.Config {
	if path == "" {
		return emu.LoadConfigOrDefault()
	}
	cfg, err := emu.LoadConfig(path)
	checkf(err, "failed to load config")
	return cfg
}

func printVersion() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Println("nescore (unknown version)")
		return
	}
	version := bi.Main.Version
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			version += " " + s.Value
		}
	}
	fmt.Println("nescore", version, bi.GoVersion)
}
