package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/getssss/ssss"
	"github.com/urfave/cli"
)

func combineCommand() cli.Command {
	return cli.Command{
		Name:   "combine",
		Usage:  "read t shares from standard input and print the secret",
		Flags:  commonFlags(),
		Action: runCombine,
	}
}

func runCombine(c *cli.Context) error {
	if printVersionRequested(c) {
		return nil
	}
	o, err := resolveOptions(c)
	if err != nil {
		return err
	}
	if o.threshold < 2 {
		return fatalf("invalid parameters: invalid threshold value")
	}

	if !o.quiet {
		fmt.Fprintf(os.Stderr, "Enter %d shares separated by newlines:\n", o.threshold)
	}

	reader := bufio.NewReader(os.Stdin)
	shares := make([]ssss.Share, 0, o.threshold)
	payloadLen := 0
	for i := 0; i < o.threshold; i++ {
		if !o.quiet {
			fmt.Fprintf(os.Stderr, "Share [%d/%d]: ", i+1, o.threshold)
		}
		line, err := readLine(reader)
		if err != nil {
			return fatalf("I/O error while reading shares")
		}
		index, payload, err := parseShareLine(line)
		if err != nil {
			return fatalf("%s", err)
		}

		// The hex length of the first share fixes the security level for
		// the whole batch.
		if i == 0 {
			bits := 4 * len(payload)
			if bits%8 != 0 || bits < 8 {
				return fatalf("share has illegal length")
			}
			payloadLen = len(payload)
		} else if len(payload) != payloadLen {
			return fatalf("shares have different security levels")
		}

		if index < 1 || index > ssss.MaxShares {
			return fatalf("invalid share")
		}
		value, err := hex.DecodeString(strings.ToLower(payload))
		if err != nil {
			return fatalf("invalid syntax")
		}
		shares = append(shares, ssss.Share{
			Threshold: uint8(o.threshold),
			Index:     uint8(index),
			Value:     value,
		})
	}

	secret, err := ssss.Combine(shares, ssss.Config{
		Threshold: o.threshold,
		Diffusion: o.diffusion,
	})
	if err != nil {
		return toExitError(err)
	}
	defer ssss.Wipe(secret)

	if !o.quiet {
		fmt.Fprint(os.Stderr, "Resulting secret: ")
	}
	printSecret(os.Stdout, secret, o.hex)
	return nil
}
