package netprofile

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
)

// ValueType is a registry value type (REG_SZ, REG_DWORD, ...).
type ValueType uint32

// Registry value types, numbered as in winnt.h.
const (
	TypeNone   ValueType = 0
	TypeString ValueType = 1
	TypeExpand ValueType = 2
	TypeBinary ValueType = 3
	TypeDWord  ValueType = 4
	TypeMulti  ValueType = 7
	TypeQWord  ValueType = 11
)

// String returns the REG_* name of the type.
func (t ValueType) String() string {
	switch t {
	case TypeNone:
		return "REG_NONE"
	case TypeString:
		return "REG_SZ"
	case TypeExpand:
		return "REG_EXPAND_SZ"
	case TypeBinary:
		return "REG_BINARY"
	case TypeDWord:
		return "REG_DWORD"
	case TypeMulti:
		return "REG_MULTI_SZ"
	case TypeQWord:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("REG_TYPE(%d)", uint32(t))
	}
}

// Value is a raw snapshot of one registry value.
type Value struct {
	Name string    `json:"name"`
	Type ValueType `json:"type"`
	Data []byte    `json:"data"`
}

// StringValue builds a REG_SZ value.
func StringValue(name, s string) Value {
	return Value{Name: name, Type: TypeString, Data: EncodeString(s)}
}

// DWordValue builds a REG_DWORD value.
func DWordValue(name string, v uint32) Value {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, v)
	return Value{Name: name, Type: TypeDWord, Data: data}
}

// Text renders the value for display.
func (v Value) Text() string {
	switch v.Type {
	case TypeString, TypeExpand:
		return DecodeString(v.Data)
	case TypeMulti:
		return strings.Join(DecodeStrings(v.Data), "; ")
	case TypeDWord:
		if n, ok := v.DWord(); ok {
			return fmt.Sprintf("0x%08x (%d)", n, n)
		}
	case TypeQWord:
		if n, ok := v.QWord(); ok {
			return fmt.Sprintf("0x%016x (%d)", n, n)
		}
	}
	return fmt.Sprintf("% x", v.Data)
}

// WriteType is the type a restore writes v back as. Types the registry
// package has no typed setter for, and DWORD/QWORD values with short data,
// are written as REG_BINARY.
func (v Value) WriteType() ValueType {
	switch v.Type {
	case TypeString, TypeExpand, TypeMulti:
		return v.Type
	case TypeDWord:
		if _, ok := v.DWord(); ok {
			return v.Type
		}
	case TypeQWord:
		if _, ok := v.QWord(); ok {
			return v.Type
		}
	}
	return TypeBinary
}

// DWord decodes a little-endian 32-bit value.
func (v Value) DWord() (uint32, bool) {
	if len(v.Data) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(v.Data), true
}

// QWord decodes a little-endian 64-bit value.
func (v Value) QWord() (uint64, bool) {
	if len(v.Data) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(v.Data), true
}

// EncodeString encodes s as NUL-terminated UTF-16LE.
func EncodeString(s string) []byte {
	u := utf16.Encode([]rune(s))
	data := make([]byte, 0, (len(u)+1)*2)
	for _, c := range u {
		data = append(data, byte(c), byte(c>>8))
	}
	return append(data, 0, 0)
}

// DecodeString decodes UTF-16LE data up to the first NUL.
func DecodeString(data []byte) string {
	u := toUTF16(data)
	for i, c := range u {
		if c == 0 {
			u = u[:i]
			break
		}
	}
	return string(utf16.Decode(u))
}

// DecodeStrings decodes REG_MULTI_SZ data.
func DecodeStrings(data []byte) []string {
	u := toUTF16(data)
	var out []string
	start := 0
	for i, c := range u {
		if c != 0 {
			continue
		}
		if i == start {
			break
		}
		out = append(out, string(utf16.Decode(u[start:i])))
		start = i + 1
	}
	if start < len(u) && u[len(u)-1] != 0 {
		out = append(out, string(utf16.Decode(u[start:])))
	}
	return out
}

func toUTF16(data []byte) []uint16 {
	u := make([]uint16, len(data)/2)
	for i := range u {
		u[i] = uint16(data[2*i]) | uint16(data[2*i+1])<<8
	}
	return u
}
