package rpc

import (
	"net"
	"net/http"
	"net/rpc"
	"strconv"

	"github.com/go-faster/errors"

	"nescore/emu"
	"nescore/emu/debugger"
	"nescore/hw/input"
	"nescore/hw/snapshot"
)

type emuProxy struct {
	emu Emu
}

func (ep *emuProxy) Reset(_, _ *struct{}) error             { ep.emu.Reset(); return nil }
func (ep *emuProxy) Restart(_, _ *struct{}) error           { ep.emu.Restart(); return nil }
func (ep *emuProxy) SetPause(pause bool, _ *struct{}) error { ep.emu.SetPause(pause); return nil }
func (ep *emuProxy) Stop(_ *struct{}, _ *struct{}) error    { ep.emu.Stop(); return nil }

func (ep *emuProxy) IsReady(_ *struct{}, reply *bool) error {
	*reply = true
	return nil
}

func (ep *emuProxy) SetButtons(args ButtonsArgs, _ *struct{}) error {
	if args.Pad != 0 && args.Pad != 1 {
		return errors.Errorf("invalid pad %d", args.Pad)
	}
	b, err := input.ParseButtons(args.Buttons)
	if err != nil {
		return err
	}
	return ep.emu.Do(func(nes *emu.NES) {
		nes.Controller(args.Pad).SetButtons(b)
	})
}

// Snapshot replies with the JSON encoded console state.
func (ep *emuProxy) Snapshot(_ *struct{}, reply *[]byte) error {
	var err error
	derr := ep.emu.Do(func(nes *emu.NES) {
		*reply, err = nes.Snapshot().MarshalJSON()
	})
	if derr != nil {
		return derr
	}
	return err
}

// Peek reads the CPU address space without side effects.
func (ep *emuProxy) Peek(args MemArgs, reply *[]byte) error {
	if args.Count < 0 || args.Count > 0x10000 {
		return errors.Errorf("invalid count %d", args.Count)
	}
	return ep.emu.Do(func(nes *emu.NES) {
		buf := make([]byte, args.Count)
		for i := range buf {
			buf[i] = nes.Peek(args.Addr + uint16(i))
		}
		*reply = buf
	})
}

func (ep *emuProxy) Region(args RegionArgs, reply *[]byte) error {
	r, err := snapshot.ParseRegion(args.Region)
	if err != nil {
		return err
	}
	return ep.emu.Do(func(nes *emu.NES) {
		*reply = nes.Region(r)
	})
}

func (ep *emuProxy) Poke(args PokeArgs, _ *struct{}) error {
	r, err := snapshot.ParseRegion(args.Region)
	if err != nil {
		return err
	}
	derr := ep.emu.Do(func(nes *emu.NES) {
		err = nes.Poke(r, args.Offset, args.Val)
	})
	if derr != nil {
		return derr
	}
	return err
}

func (ep *emuProxy) Disasm(args MemArgs, reply *[]string) error {
	if args.Count < 0 || args.Count > 0x1000 {
		return errors.Errorf("invalid count %d", args.Count)
	}
	return ep.emu.Do(func(nes *emu.NES) {
		for _, op := range nes.Disassemble(args.Addr, args.Count) {
			*reply = append(*reply, op.String())
		}
	})
}

func (ep *emuProxy) Breakpoint(args BreakpointArgs, _ *struct{}) error {
	return ep.emu.Do(func(nes *emu.NES) {
		if args.Set {
			nes.Debugger().Breakpoints.Set(args.Addr)
		} else {
			nes.Debugger().Breakpoints.Clear(args.Addr)
		}
	})
}

func (ep *emuProxy) Backtrace(_ *struct{}, reply *[]debugger.FrameInfo) error {
	return ep.emu.Do(func(nes *emu.NES) {
		*reply = nes.Debugger().Backtrace()
	})
}

func (ep *emuProxy) AddCheat(code string, _ *struct{}) error {
	var err error
	derr := ep.emu.Do(func(nes *emu.NES) {
		err = nes.AddCheat(code)
	})
	if derr != nil {
		return derr
	}
	return err
}

// Server serves the emulator over HTTP, on the net/rpc default path.
type Server struct {
	ln  net.Listener
	srv *http.Server
}

// NewServer starts serving e on localhost:port. With port 0, a free port is
// picked, see Addr.
func NewServer(port int, e Emu) (*Server, error) {
	rpcsrv := rpc.NewServer()
	if err := rpcsrv.RegisterName("emu", &emuProxy{emu: e}); err != nil {
		return nil, errors.Wrap(err, "failed to register RPC server")
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, rpcsrv)

	ln, err := net.Listen("tcp", "localhost:"+strconv.Itoa(port))
	if err != nil {
		return nil, err
	}

	s := &Server{
		ln:  ln,
		srv: &http.Server{Handler: mux},
	}
	go func() {
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			modRPC.ErrorZ("rpc server stopped").Error("err", err).End()
		}
	}()

	modRPC.InfoZ("rpc server listening").String("addr", ln.Addr().String()).End()
	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

func (s *Server) Close() error {
	return s.srv.Close()
}
