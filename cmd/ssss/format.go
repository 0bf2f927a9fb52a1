package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/getssss/ssss"
)

// importSecret converts the entered secret into the l-byte buffer the
// driver splits. Hex input is right-aligned with zero padding on the left;
// ASCII input is left-aligned with zero padding on the right, matching the
// historical share format. Intermediate buffers are wiped before return.
func importSecret(line []byte, l int, hexMode bool) ([]byte, error) {
	if hexMode {
		if len(line) > 2*l {
			return nil, errors.New("input string too long")
		}
		if len(line) < 2*l {
			warnf("input string too short, adding null padding on the left")
		}
		padded := make([]byte, 0, len(line)+1)
		if len(line)%2 == 1 {
			padded = append(padded, '0')
		}
		padded = append(padded, bytes.ToLower(line)...)
		defer ssss.Wipe(padded)

		raw := make([]byte, len(padded)/2)
		if _, err := hex.Decode(raw, padded); err != nil {
			ssss.Wipe(raw)
			return nil, errors.New("invalid syntax")
		}
		out := make([]byte, l)
		copy(out[l-len(raw):], raw)
		ssss.Wipe(raw)
		return out, nil
	}

	if len(line) > l {
		return nil, errors.New("input string too long")
	}
	warn := false
	for i := 0; i < len(line); i++ {
		if line[i] < 32 || line[i] >= 127 {
			warn = true
		}
	}
	if warn {
		warnf("binary data detected, use -x mode instead")
	}
	out := make([]byte, l)
	copy(out, line)
	return out, nil
}

// printSecret writes the reconstructed secret followed by a newline. In
// ASCII mode non-printable bytes are rendered as '.' with a warning.
func printSecret(w io.Writer, buf []byte, hexMode bool) {
	if hexMode {
		fmt.Fprintf(w, "%s\n", hex.EncodeToString(buf))
		return
	}
	warn := false
	var sb strings.Builder
	for _, b := range buf {
		if b >= 32 && b < 127 {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('.')
			warn = true
		}
	}
	fmt.Fprintln(w, sb.String())
	if warn {
		warnf("binary data detected, use -x mode instead")
	}
}

// parseShareLine takes a "[token-]index-hex" share line and returns the
// decimal index and the hex payload. The token, when present, is ignored.
func parseShareLine(line string) (int, string, error) {
	fields := strings.SplitN(line, "-", 3)
	var indexField, payload string
	switch len(fields) {
	case 2:
		indexField, payload = fields[0], fields[1]
	case 3:
		indexField, payload = fields[1], fields[2]
	default:
		return 0, "", errors.New("invalid syntax")
	}
	index, err := strconv.Atoi(indexField)
	if err != nil {
		return 0, "", errors.New("invalid syntax")
	}
	if index == 0 {
		return 0, "", errors.New("invalid share")
	}
	return index, payload, nil
}
