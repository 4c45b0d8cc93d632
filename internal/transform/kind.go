// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transform

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder is rendered when a transformer cannot produce output.
const Placeholder = "<none>"

// Kind identifies one transformer. The set is closed.
type Kind int

const (
	Base64 Kind = iota
	Base32
	Hex
	CHex
	LEU16
	BEU16
	LEU32
	BEU32
	LEU64
	BEU64
	LEI16
	BEI16
	LEI32
	BEI32
	LEI64
	BEI64

	kindCount
)

var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// AllKinds returns every kind in display order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Base64; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Label returns the short unique name of the transformer.
func (k Kind) Label() string {
	switch k {
	case Base64:
		return "base64"
	case Base32:
		return "base32"
	case Hex:
		return "hex"
	case CHex:
		return "chex"
	case LEU16:
		return "leu16"
	case BEU16:
		return "beu16"
	case LEU32:
		return "leu32"
	case BEU32:
		return "beu32"
	case LEU64:
		return "leu64"
	case BEU64:
		return "beu64"
	case LEI16:
		return "lei16"
	case BEI16:
		return "bei16"
	case LEI32:
		return "lei32"
	case BEI32:
		return "bei32"
	case LEI64:
		return "lei64"
	case BEI64:
		return "bei64"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.Label()
}

// Width returns the exact input length a fixed-width transformer accepts,
// or 0 when any non-empty length is accepted.
func (k Kind) Width() int {
	switch k {
	case LEU16, BEU16, LEI16, BEI16:
		return 2
	case LEU32, BEU32, LEI32, BEI32:
		return 4
	case LEU64, BEU64, LEI64, BEI64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= Base64 && k < kindCount
}

// Transform renders buf. It is total: empty input, a width mismatch or an
// unknown kind all yield Placeholder.
func (k Kind) Transform(buf []byte) string {
	if len(buf) == 0 {
		return Placeholder
	}
	if w := k.Width(); w != 0 && len(buf) != w {
		return Placeholder
	}

	switch k {
	case Base64:
		return base64.RawStdEncoding.EncodeToString(buf)
	case Base32:
		return base32NoPad.EncodeToString(buf)
	case Hex:
		return hex.EncodeToString(buf)
	case CHex:
		return cEscape(buf)
	case LEU16:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint16(buf)), 10)
	case BEU16:
		return strconv.FormatUint(uint64(binary.BigEndian.Uint16(buf)), 10)
	case LEU32:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(buf)), 10)
	case BEU32:
		return strconv.FormatUint(uint64(binary.BigEndian.Uint32(buf)), 10)
	case LEU64:
		return strconv.FormatUint(binary.LittleEndian.Uint64(buf), 10)
	case BEU64:
		return strconv.FormatUint(binary.BigEndian.Uint64(buf), 10)
	case LEI16:
		return strconv.FormatInt(int64(int16(binary.LittleEndian.Uint16(buf))), 10)
	case BEI16:
		return strconv.FormatInt(int64(int16(binary.BigEndian.Uint16(buf))), 10)
	case LEI32:
		return strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(buf))), 10)
	case BEI32:
		return strconv.FormatInt(int64(int32(binary.BigEndian.Uint32(buf))), 10)
	case LEI64:
		return strconv.FormatInt(int64(binary.LittleEndian.Uint64(buf)), 10)
	case BEI64:
		return strconv.FormatInt(int64(binary.BigEndian.Uint64(buf)), 10)
	default:
		return Placeholder
	}
}

// cEscape renders each byte as an uppercase \xHH escape.
func cEscape(buf []byte) string {
	const digits = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow(len(buf) * 4)
	for _, b := range buf {
		sb.WriteString(`\x`)
		sb.WriteByte(digits[b>>4])
		sb.WriteByte(digits[b&0x0f])
	}
	return sb.String()
}
