package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"nescore/emu/log"
)

type (
	CLI struct {
		Run      Run       `cmd:"" help:"Run ROM in the headless emulator."`
		Check    Check     `cmd:"" help:"Run ROMs and report test status."`
		Disasm   Disasm    `cmd:"" help:"Disassemble ROM code."`
		RomInfos RomInfos  `cmd:"" help:"Show ROM infos." name:"rom-infos"`
		Config   ConfigCmd `cmd:"" help:"Show or save the configuration."`
		Version  Version   `cmd:"" help:"Show nescore version."`

		ConfigPath string     `name:"config" help:"${config_help}" type:"path" placeholder:"FILE"`
		Log        logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
	}

	Run struct {
		RomPath string `arg:"" name:"/path/to/rom" help:"ROM to run." type:"existingfile"`

		Frames     int64    `name:"frames" help:"Number of frames to run, 0 runs until interrupted."`
		StartPC    uint16   `name:"start-pc" help:"Start execution at this address instead of the reset vector (e.g. 0xC000)."`
		CPUProfile string   `name:"cpuprofile" help:"${cpuprofile_help}" type:"path"`
		Trace      *outfile `name:"trace" help:"Write CPU trace log." placeholder:"FILE|stdout|stderr"`
		DumpDir    string   `name:"dump-dir" help:"Save frames as PNG files into this directory." type:"path"`
		DumpEvery  int64    `name:"dump-every" help:"Save one frame every N frames, 0 only saves the last one."`
		Input      string   `name:"input" help:"${input_help}" type:"existingfile"`
		Cheats     []string `name:"cheat" help:"Enable a Game Genie or AAAA:VV cheat code (repeatable)."`
		Port       int      `name:"port" help:"Serve the emulator over RPC on this port."`
		Snapshot   *outfile `name:"snapshot" help:"Write the final console state as JSON." placeholder:"FILE|stdout|stderr"`
	}

	Check struct {
		RomPaths []string `arg:"" name:"/path/to/rom" help:"ROMs to run." type:"existingfile"`

		Frames int64 `name:"frames" help:"Maximum number of frames to run each ROM." default:"1800"`
		Jobs   int   `name:"jobs" short:"j" help:"Number of ROMs run in parallel, 0 for one per CPU."`
	}

	Disasm struct {
		RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`

		Addr  uint16 `name:"addr" help:"Start address, defaults to the reset vector target."`
		Count int    `name:"count" short:"n" help:"Number of instructions." default:"32"`
	}

	RomInfos struct {
		RomPaths []string `arg:"" name:"/path/to/rom" type:"existingfile"`
	}

	ConfigCmd struct {
		Save bool `name:"save" help:"Save the configuration (with defaults filled in) into the config directory."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"config_help":     "Configuration file, defaults to config.toml in the nescore config directory.",
	"cpuprofile_help": "Write CPU profile to file.",
	"input_help":      "Input script, one '<frame> <pad1> [<pad2>]' line per change.",
	"log_help":        "Enable debug logs for specified modules.",
}

func parseArgs(args []string) (*kong.Context, *CLI) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("nescore"),
		kong.Description("Headless NES emulator core."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)
	return ctx, &cli
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

// logModMask is the value of the --log flag.
type logModMask struct {
	set   bool
	nolog bool
	mask  log.ModuleMask
}

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	s, ok := tok.Value.(string)
	if !ok {
		return fmt.Errorf("expected a module list, got %v", tok.Value)
	}
	return lm.parse(s)
}

func (lm *logModMask) parse(s string) error {
	mods := strings.Split(s, ",")
	for _, m := range mods {
		m = strings.TrimSpace(m)
		if m == "no" && len(mods) > 1 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
	}

	mask, err := log.ParseModuleMask(s)
	if err != nil {
		return err
	}
	lm.set = true
	lm.nolog = strings.TrimSpace(s) == "no"
	lm.mask = mask
	return nil
}

// apply enables the selected debug logs.
func (lm *logModMask) apply() {
	if lm.nolog {
		log.Disable()
		return
	}
	log.EnableDebugModules(lm.mask)
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
