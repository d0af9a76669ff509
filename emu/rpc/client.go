package rpc

import (
	"net/rpc"
	"time"

	"github.com/go-faster/errors"

	"nescore/emu/debugger"
	"nescore/hw/snapshot"
)

type Client struct {
	client *rpc.Client
}

// NewClient connects to the server at addr (host:port), retrying for a
// little while so the server has time to start.
func NewClient(addr string) (*Client, error) {
	var (
		client *rpc.Client
		err    error
	)
	const maxretries = 5
	for i := range maxretries {
		if client, err = rpc.DialHTTP("tcp", addr); err == nil {
			break
		}
		modRPC.WarnZ("dial tcp failed").Error("err", err).Int("retry", i).End()
		time.Sleep(250 * time.Millisecond)
	}

	if client == nil {
		return nil, errors.Wrap(err, "dial failed max retries")
	}

	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	modRPC.DebugZ("closing rpc client").End()
	return c.client.Close()
}

func (c *Client) Reset() error              { return call(c.client, "emu.Reset", nil) }
func (c *Client) Restart() error            { return call(c.client, "emu.Restart", nil) }
func (c *Client) SetPause(pause bool) error { return call(c.client, "emu.SetPause", pause) }
func (c *Client) Stop() error               { return call(c.client, "emu.Stop", nil) }

func (c *Client) SetButtons(pad int, buttons string) error {
	return call(c.client, "emu.SetButtons", ButtonsArgs{Pad: pad, Buttons: buttons})
}

func (c *Client) Snapshot() (*snapshot.NES, error) {
	buf, err := request[[]byte](c.client, "emu.Snapshot", nil)
	if err != nil {
		return nil, err
	}
	var state snapshot.NES
	if err := state.UnmarshalJSON(buf); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}
	return &state, nil
}

func (c *Client) Peek(addr uint16, count int) ([]byte, error) {
	return request[[]byte](c.client, "emu.Peek", MemArgs{Addr: addr, Count: count})
}

func (c *Client) Region(name string) ([]byte, error) {
	return request[[]byte](c.client, "emu.Region", RegionArgs{Region: name})
}

func (c *Client) Poke(region string, off int, val uint8) error {
	return call(c.client, "emu.Poke", PokeArgs{Region: region, Offset: off, Val: val})
}

func (c *Client) Disasm(addr uint16, count int) ([]string, error) {
	return request[[]string](c.client, "emu.Disasm", MemArgs{Addr: addr, Count: count})
}

func (c *Client) SetBreakpoint(addr uint16, set bool) error {
	return call(c.client, "emu.Breakpoint", BreakpointArgs{Addr: addr, Set: set})
}

func (c *Client) Backtrace() ([]debugger.FrameInfo, error) {
	return request[[]debugger.FrameInfo](c.client, "emu.Backtrace", nil)
}

func (c *Client) AddCheat(code string) error {
	return call(c.client, "emu.AddCheat", code)
}

func call(client *rpc.Client, funcname string, args any) error {
	_, err := request[struct{}](client, funcname, args)
	return err
}

func request[T any](client *rpc.Client, funcname string, args any) (T, error) {
	if args == nil {
		args = &struct{}{}
	}
	var reply T
	if err := client.Call(funcname, args, &reply); err != nil {
		modRPC.WarnZ("RPC call failed").String("func", funcname).Error("err", err).End()
		return reply, errors.Wrap(err, funcname)
	}
	return reply, nil
}
