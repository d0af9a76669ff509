package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"nescore/emu"
	"nescore/emu/rpc"
	"nescore/ines"
)

// mergeRunFlags overrides cfg with the flags set on the command line.
func mergeRunFlags(args Run, cfg emu.Config) emu.Config {
	if args.Frames != 0 {
		cfg.Emulation.Frames = args.Frames
	}
	if args.StartPC != 0 {
		cfg.Emulation.StartPC = args.StartPC
	}
	cfg.Emulation.Cheats = append(cfg.Emulation.Cheats, args.Cheats...)
	if args.DumpDir != "" {
		cfg.Video.DumpDir = args.DumpDir
	}
	if args.DumpEvery != 0 {
		cfg.Video.DumpEvery = args.DumpEvery
	}
	if args.Input != "" {
		cfg.Input.Script = args.Input
	}
	if args.Port != 0 {
		cfg.Debug.RPCPort = args.Port
	}
	return cfg
}

// runMain runs the emulator headless with the given rom and returns the
// process exit code.
func runMain(args Run, cfg emu.Config) int {
	cfg = mergeRunFlags(args, cfg)

	rom, err := ines.Open(args.RomPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading ROM: %s\n", err)
		return 1
	}

	var traceout io.WriteCloser
	switch {
	case args.Trace != nil:
		traceout = args.Trace
	case cfg.Emulation.TraceFile != "":
		f, err := os.Create(cfg.Emulation.TraceFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create trace file: %s\n", err)
			return 1
		}
		traceout = f
	}
	if traceout != nil {
		defer traceout.Close()
		cfg.TraceOut = traceout
	}

	out := &emu.HeadlessOutput{
		Dir:   cfg.Video.DumpDir,
		Name:  strings.TrimSuffix(filepath.Base(args.RomPath), filepath.Ext(args.RomPath)),
		Every: cfg.Video.DumpEvery,
	}
	emulator, err := emu.Launch(rom, cfg, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start emulator: %v\n", err)
		return 1
	}

	if args.CPUProfile != "" {
		f, err := os.Create(args.CPUProfile)
		checkf(err, "failed to create cpu profile file")
		checkf(pprof.StartCPUProfile(f), "failed to start cpu profile")
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", args.CPUProfile)
		}()
	}

	if cfg.Debug.RPCPort != 0 {
		server, err := rpc.NewServer(cfg.Debug.RPCPort, emulator)
		if err != nil {
			fmt.Fprintf(os.Stderr, "RPC error: %v\n", err)
			return 1
		}
		defer server.Close()
		fmt.Println("rpc server listening on", server.Addr())
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			emulator.Stop()
		}
	}()

	exitcode := 0
	if err := emulator.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "emulation stopped: %v\n", err)
		exitcode = 1
	}

	if args.Snapshot != nil {
		defer args.Snapshot.Close()
		buf, err := emulator.NES.Snapshot().MarshalJSON()
		if err == nil {
			_, err = args.Snapshot.Write(append(buf, '\n'))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to write snapshot: %v\n", err)
			exitcode = 1
		}
	}

	fmt.Printf("%d frames, %d cpu cycles\n", emulator.Frames(), emulator.NES.CPU.Cycles)
	return exitcode
}
