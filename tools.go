package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"

	"nescore/emu"
	"nescore/emu/log"
	"nescore/hw/snapshot"
	"nescore/ines"
)

// Test ROMs following the blargg convention report their status in PRG RAM:
// $6000 holds the status, $6001-$6003 the magic bytes and a zero-terminated
// text starts at $6004.
var testRomMagic = []byte{0xde, 0xb0, 0x61}

type checkResult struct {
	path   string
	frames int64
	status string
	ok     bool
}

// checkRom runs the rom until it reports its test status or nframes have
// elapsed.
func checkRom(path string, nframes int64) checkResult {
	res := checkResult{path: path}

	rom, err := ines.Open(path)
	if err != nil {
		res.status = err.Error()
		return res
	}
	nes, err := emu.PowerUp(rom)
	if err != nil {
		res.status = err.Error()
		return res
	}

	for res.frames < nframes {
		if err := nes.RunFrame(); err != nil {
			res.status = err.Error()
			return res
		}
		res.frames++

		prgram := nes.Region(snapshot.RegionPRGRAM)
		if len(prgram) < 4 || !bytes.Equal(prgram[1:4], testRomMagic) {
			continue
		}
		if code := prgram[0]; code < 0x80 {
			text := prgram[4:]
			if i := bytes.IndexByte(text, 0); i >= 0 {
				text = text[:i]
			}
			res.ok = code == 0
			res.status = fmt.Sprintf("code $%02X: %s", code, bytes.TrimSpace(text))
			return res
		}
	}

	res.ok = true
	res.status = "no test status reported"
	return res
}

// checkMain runs each rom headless, in parallel, and prints a report. It
// returns 1 if any rom failed.
func checkMain(args Check) int {
	log.Disable()

	results := make([]checkResult, len(args.RomPaths))

	var g errgroup.Group
	jobs := args.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g.SetLimit(jobs)
	for i, path := range args.RomPaths {
		g.Go(func() error {
			results[i] = checkRom(path, args.Frames)
			return nil
		})
	}
	g.Wait()

	exitcode := 0
	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, res := range results {
		verdict := "ok"
		if !res.ok {
			verdict = "FAIL"
			exitcode = 1
		}
		fmt.Fprintf(tw, "%s\t%s\t%d frames\t%s\n", verdict, res.path, res.frames, res.status)
	}
	tw.Flush()
	return exitcode
}

func disasmMain(args Disasm) error {
	rom, err := ines.Open(args.RomPath)
	if err != nil {
		return err
	}
	nes, err := emu.PowerUp(rom)
	if err != nil {
		return err
	}

	addr := args.Addr
	if addr == 0 {
		addr = nes.CPU.PC
	}
	for _, op := range nes.Disassemble(addr, args.Count) {
		fmt.Println(op)
	}
	return nil
}

func romInfosMain(args RomInfos) error {
	for _, path := range args.RomPaths {
		rom, err := ines.Open(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", path, rom.Info())
	}
	return nil
}

func configMain(args ConfigCmd, cfg emu.Config) error {
	if args.Save {
		if err := emu.SaveConfig(cfg, ""); err != nil {
			return err
		}
		fmt.Println("configuration saved into", emu.ConfigDir())
		return nil
	}
	return toml.NewEncoder(os.Stdout).Encode(cfg)
}
