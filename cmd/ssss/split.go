package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/getssss/ssss"
	"github.com/getssss/ssss/gf"
	"github.com/urfave/cli"
)

func splitCommand() cli.Command {
	return cli.Command{
		Name:  "split",
		Usage: "read a secret from standard input and print n shares",
		Flags: append(commonFlags(),
			cli.IntFlag{
				Name:  "shares, n",
				Usage: "number of shares to generate",
			},
			cli.StringFlag{
				Name:  "token, w",
				Usage: "text token to prepend to every share line",
			},
			cli.IntFlag{
				Name:  "security, s",
				Usage: "security level in bits; inferred from the secret length when absent",
			},
		),
		Action: runSplit,
	}
}

func runSplit(c *cli.Context) error {
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
	if o.shares < o.threshold {
		return fatalf("invalid parameters: number of shares smaller than threshold")
	}
	if o.security != 0 && (o.security%8 != 0 || o.security < 8) {
		return fatalf("invalid parameters: invalid security level")
	}
	if len(o.token) > maxTokenLen {
		return fatalf("invalid parameters: token too long")
	}

	if !o.quiet {
		fmt.Fprintf(os.Stderr, "Generating shares using a (%d,%d) scheme with ",
			o.threshold, o.shares)
		if o.security != 0 {
			fmt.Fprintf(os.Stderr, "a %d bit", o.security)
		} else {
			fmt.Fprint(os.Stderr, "dynamic")
		}
		fmt.Fprint(os.Stderr, " security level.\n")

		deg := o.security
		if deg == 0 {
			deg = gf.MaxDegree
		}
		if o.hex {
			fmt.Fprintf(os.Stderr, "Enter the secret, at most %d hex digits: ", deg/4)
		} else {
			fmt.Fprintf(os.Stderr, "Enter the secret, at most %d ASCII characters: ", deg/8)
		}
	}

	line, err := readSecretLine()
	if err != nil {
		return fatalf("I/O error while reading secret")
	}
	defer ssss.Wipe(line)

	if o.security == 0 {
		if o.hex {
			o.security = 4 * ((len(line) + 1) &^ 1)
		} else {
			o.security = 8 * len(line)
		}
		if o.security%8 != 0 || o.security < 8 {
			return fatalf("security level invalid (secret too long?)")
		}
		if !o.quiet {
			fmt.Fprintf(os.Stderr, "Using a %d bit security level.\n", o.security)
		}
	}

	secret, err := importSecret(line, o.security/8, o.hex)
	if err != nil {
		return fatalf("%s", err)
	}
	defer ssss.Wipe(secret)

	shares, err := ssss.Split(secret, ssss.Config{
		Threshold: o.threshold,
		Shares:    o.shares,
		Diffusion: o.diffusion,
	})
	if err != nil {
		return toExitError(err)
	}

	width := len(strconv.Itoa(o.shares))
	for _, sh := range shares {
		if o.token != "" {
			fmt.Printf("%s-", o.token)
		}
		fmt.Printf("%0*d-%s\n", width, sh.Index, hex.EncodeToString(sh.Value))
	}
	return nil
}
