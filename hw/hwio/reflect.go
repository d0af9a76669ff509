package hwio

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type bankReg struct {
	offset uint16
	regPtr any
}

type regTag struct {
	bank      int
	offset    int // -1 if absent
	size      int
	vsize     int
	reset     uint64
	rwmask    uint64
	readonly  bool
	writeonly bool
	rcb       string
	wcb       string
	pcb       string
}

func parseTag(field string, tag string) (regTag, error) {
	rt := regTag{offset: -1, rwmask: 0xFF}
	if tag == "" {
		return rt, nil
	}

	for _, opt := range strings.Split(tag, ",") {
		key, val, hasval := strings.Cut(strings.TrimSpace(opt), "=")
		num := func() (uint64, error) {
			if !hasval {
				return 0, fmt.Errorf("%s: option %q needs a value", field, key)
			}
			return strconv.ParseUint(val, 0, 32)
		}
		cb := func(prefix string) string {
			if hasval {
				return val
			}
			return prefix + strings.ToUpper(field)
		}

		var err error
		var n uint64
		switch key {
		case "bank":
			n, err = num()
			rt.bank = int(n)
		case "offset":
			n, err = num()
			rt.offset = int(n)
		case "size":
			n, err = num()
			rt.size = int(n)
		case "vsize":
			n, err = num()
			rt.vsize = int(n)
		case "reset":
			rt.reset, err = num()
		case "rwmask":
			rt.rwmask, err = num()
		case "readonly":
			rt.readonly = true
		case "writeonly":
			rt.writeonly = true
		case "rcb":
			rt.rcb = cb("Read")
		case "wcb":
			rt.wcb = cb("Write")
		case "pcb":
			rt.pcb = cb("Peek")
		default:
			return rt, fmt.Errorf("%s: unknown hwio option %q", field, key)
		}
		if err != nil {
			return rt, fmt.Errorf("%s: invalid option %q: %w", field, opt, err)
		}
	}
	return rt, nil
}

func (rt regTag) flags() RWFlags {
	var f RWFlags
	if rt.readonly {
		f |= ReadOnlyFlag
	}
	if rt.writeonly {
		f |= WriteOnlyFlag
	}
	return f
}

func bindMethod[F any](v reflect.Value, name string, dst *F) error {
	if name == "" {
		return nil
	}
	m := v.MethodByName(name)
	if !m.IsValid() {
		return fmt.Errorf("method %s not found on %s", name, v.Type())
	}
	f, ok := m.Interface().(F)
	if !ok {
		return fmt.Errorf("method %s has signature %s, want %T", name, m.Type(), *dst)
	}
	*dst = f
	return nil
}

// InitRegs initializes every hwio field of the struct pointed to by ptr
// according to its "hwio" struct tag. Supported options:
//
//	bank=N       bank number for MapBank (default 0)
//	offset=N     offset within the bank; fields without offset are not mapped by MapBank
//	size=N       Mem: allocated size; Device: mapped size
//	vsize=N      Mem: mapped size, mirroring Data (default size)
//	reset=N      Reg8: initial value
//	rwmask=N     Reg8: writable bits (default 0xFF)
//	readonly     ignore writes
//	writeonly    reads return 0
//	rcb[=Name]   read callback, method Read<FIELD> by default
//	wcb[=Name]   write callback, method Write<FIELD> by default
//	pcb[=Name]   peek callback, method Peek<FIELD> by default
func InitRegs(ptr any) error {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("InitRegs: want pointer to struct, got %T", ptr)
	}
	sv := v.Elem()
	st := sv.Type()

	for i := range st.NumField() {
		sf := st.Field(i)
		tag, ok := sf.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		rt, err := parseTag(sf.Name, tag)
		if err != nil {
			return err
		}

		fv := sv.Field(i).Addr().Interface()
		switch r := fv.(type) {
		case *Reg8:
			if rt.reset > 0xFF {
				return fmt.Errorf("%s: reset value %#x overflows 8 bits", sf.Name, rt.reset)
			}
			if rt.rwmask > 0xFF {
				return fmt.Errorf("%s: rwmask %#x overflows 8 bits", sf.Name, rt.rwmask)
			}
			r.Name = sf.Name
			r.Value = uint8(rt.reset)
			r.RoMask = ^uint8(rt.rwmask)
			r.Flags = rt.flags()
			if err := bindMethod(v, rt.rcb, &r.ReadCb); err != nil {
				return err
			}
			if err := bindMethod(v, rt.wcb, &r.WriteCb); err != nil {
				return err
			}
			if err := bindMethod(v, rt.pcb, &r.PeekCb); err != nil {
				return err
			}
		case *Mem:
			r.Name = sf.Name
			if rt.size > 0 && len(r.Data) == 0 {
				r.Data = make([]byte, rt.size)
			}
			r.VSize = rt.vsize
			if r.VSize == 0 {
				r.VSize = rt.size
			}
			if r.VSize == 0 {
				r.VSize = len(r.Data)
			}
			if rt.readonly {
				r.Flags |= MemFlag8ReadOnly
			}
			if err := bindMethod(v, rt.wcb, &r.WriteCb); err != nil {
				return err
			}
		case *Device:
			r.Name = sf.Name
			r.Size = rt.size
			r.Flags = rt.flags()
			if err := bindMethod(v, rt.rcb, &r.ReadCb); err != nil {
				return err
			}
			if err := bindMethod(v, rt.wcb, &r.WriteCb); err != nil {
				return err
			}
			if err := bindMethod(v, rt.pcb, &r.PeekCb); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unsupported hwio field type %s", sf.Name, sf.Type)
		}
	}
	return nil
}

// MustInitRegs is like InitRegs but panics on error.
func MustInitRegs(ptr any) {
	if err := InitRegs(ptr); err != nil {
		panic(err)
	}
}

// bankGetRegs returns the fields of bank belonging to bankNum, in field
// order.
func bankGetRegs(bank any, bankNum int) ([]bankReg, error) {
	v := reflect.ValueOf(bank)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bank: want pointer to struct, got %T", bank)
	}
	sv := v.Elem()
	st := sv.Type()

	var regs []bankReg
	for i := range st.NumField() {
		sf := st.Field(i)
		tag, ok := sf.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		rt, err := parseTag(sf.Name, tag)
		if err != nil {
			return nil, err
		}
		if rt.offset < 0 || rt.bank != bankNum {
			continue
		}
		if rt.offset > 0xFFFF {
			return nil, fmt.Errorf("%s: offset %#x overflows 16 bits", sf.Name, rt.offset)
		}
		regs = append(regs, bankReg{
			offset: uint16(rt.offset),
			regPtr: sv.Field(i).Addr().Interface(),
		})
	}
	return regs, nil
}
