// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package input

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

const (
	prefixHex    = "0x"
	prefixOctal  = "0o"
	prefixBinary = "0b"
)

// Resolve converts raw text into a byte buffer under the given mode.
// It never fails: malformed Smart literals resolve to an empty buffer.
func Resolve(raw string, mode Mode) []byte {
	if raw == "" {
		return []byte{}
	}
	if mode != Smart {
		return []byte(raw)
	}

	switch {
	case strings.HasPrefix(raw, prefixHex):
		return decodeHex(raw[len(prefixHex):])
	case strings.HasPrefix(raw, prefixOctal):
		return decodeInt(raw[len(prefixOctal):], 8)
	case strings.HasPrefix(raw, prefixBinary):
		return decodeInt(raw[len(prefixBinary):], 2)
	default:
		return []byte(raw)
	}
}

func decodeHex(digits string) []byte {
	b, err := hex.DecodeString(digits)
	if err != nil {
		return []byte{}
	}
	return b
}

// decodeInt parses digits as a native-word signed integer and returns its
// native-order bytes with the zero bytes at the most significant end removed.
func decodeInt(digits string, base int) []byte {
	v, err := strconv.ParseInt(digits, base, strconv.IntSize)
	if err != nil {
		return []byte{}
	}
	return TrimNative(NativeBytes(v))
}

// NativeBytes serializes v as a native word in host byte order.
func NativeBytes(v int64) []byte {
	n := strconv.IntSize / 8
	buf := make([]byte, 8)
	if cpu.IsBigEndian {
		binary.BigEndian.PutUint64(buf, uint64(v))
		return buf[8-n:]
	}
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return buf[:n]
}

// TrimNative strips zero bytes from the most significant end of a
// native-order buffer. An all-zero buffer trims to empty.
func TrimNative(b []byte) []byte {
	if cpu.IsBigEndian {
		i := 0
		for i < len(b) && b[i] == 0 {
			i++
		}
		return b[i:]
	}
	j := len(b)
	for j > 0 && b[j-1] == 0 {
		j--
	}
	return b[:j]
}
