package log

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

const maxZFields = 16

// EntryZ is a structured log entry built with chained calls and emitted by
// End. A nil *EntryZ is valid and drops everything, so disabled modules cost
// a single nil check per call:
//
//	log.ModPPU.DebugZ("write PPUCTRL").Hex8("val", v).End()
type EntryZ struct {
	lvl   Level
	mod   Module
	msg   string
	zfbuf [maxZFields]ZField
	zfidx int
}

var zpool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func NewEntryZ() *EntryZ {
	e := zpool.Get().(*EntryZ)
	e.zfidx = 0
	return e
}

func (z *EntryZ) field(key string, typ FieldType) *ZField {
	if z.zfidx == maxZFields {
		return nil
	}
	f := &z.zfbuf[z.zfidx]
	*f = ZField{Type: typ, Key: key}
	z.zfidx++
	return f
}

func (z *EntryZ) integer(key string, typ FieldType, v uint64) *EntryZ {
	if z == nil {
		return nil
	}
	if f := z.field(key, typ); f != nil {
		f.Integer = v
	}
	return z
}

func (z *EntryZ) Hex8(key string, v uint8) *EntryZ   { return z.integer(key, FieldTypeHex8, uint64(v)) }
func (z *EntryZ) Hex16(key string, v uint16) *EntryZ { return z.integer(key, FieldTypeHex16, uint64(v)) }
func (z *EntryZ) Hex32(key string, v uint32) *EntryZ { return z.integer(key, FieldTypeHex32, uint64(v)) }
func (z *EntryZ) Hex64(key string, v uint64) *EntryZ { return z.integer(key, FieldTypeHex64, v) }

func (z *EntryZ) Int(key string, v int) *EntryZ       { return z.integer(key, FieldTypeInt, uint64(v)) }
func (z *EntryZ) Int64(key string, v int64) *EntryZ   { return z.integer(key, FieldTypeInt, uint64(v)) }
func (z *EntryZ) Uint8(key string, v uint8) *EntryZ   { return z.integer(key, FieldTypeUint, uint64(v)) }
func (z *EntryZ) Uint16(key string, v uint16) *EntryZ { return z.integer(key, FieldTypeUint, uint64(v)) }
func (z *EntryZ) Uint32(key string, v uint32) *EntryZ { return z.integer(key, FieldTypeUint, uint64(v)) }
func (z *EntryZ) Uint64(key string, v uint64) *EntryZ { return z.integer(key, FieldTypeUint, v) }

func (z *EntryZ) String(key, v string) *EntryZ {
	if z == nil {
		return nil
	}
	if f := z.field(key, FieldTypeString); f != nil {
		f.String = v
	}
	return z
}

func (z *EntryZ) Bool(key string, v bool) *EntryZ {
	if z == nil {
		return nil
	}
	if f := z.field(key, FieldTypeBool); f != nil {
		f.Boolean = v
	}
	return z
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	if z == nil {
		return nil
	}
	if f := z.field(key, FieldTypeError); f != nil {
		f.Error = err
	}
	return z
}

func (z *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	if z == nil {
		return nil
	}
	if f := z.field(key, FieldTypeDuration); f != nil {
		f.Duration = d
	}
	return z
}

func (z *EntryZ) Stringer(key string, s fmt.Stringer) *EntryZ {
	if z == nil {
		return nil
	}
	if f := z.field(key, FieldTypeStringer); f != nil {
		f.Interface = s
	}
	return z
}

func (z *EntryZ) Blob(key string, b []byte) *EntryZ {
	if z == nil {
		return nil
	}
	if f := z.field(key, FieldTypeBlob); f != nil {
		f.Blob = b
	}
	return z
}

// End emits the entry and returns it to the pool.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	for _, c := range contexts {
		c.AddLogContext(z)
	}

	fields := make(logrus.Fields, z.zfidx+1)
	fields["_mod"] = z.mod.String()
	for i := range z.zfbuf[:z.zfidx] {
		fields[z.zfbuf[i].Key] = z.zfbuf[i].Value()
	}
	entry := logrus.StandardLogger().WithFields(fields)

	switch z.lvl {
	case DebugLevel:
		entry.Debug(z.msg)
	case InfoLevel:
		entry.Info(z.msg)
	case WarnLevel:
		entry.Warn(z.msg)
	case ErrorLevel:
		entry.Error(z.msg)
	case FatalLevel:
		entry.Fatal(z.msg)
	case PanicLevel:
		z.release()
		entry.Panic(z.msg)
	}
	z.release()
}

func (z *EntryZ) release() {
	for i := range z.zfbuf[:z.zfidx] {
		z.zfbuf[i] = ZField{}
	}
	z.zfidx = 0
	zpool.Put(z)
}
