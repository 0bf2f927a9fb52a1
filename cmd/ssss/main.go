/*
Command ssss splits and combines secrets using Shamir's Secret Sharing
Scheme. The split command reads one secret from standard input with
terminal echo disabled and prints n share lines; the combine command reads
t share lines and prints the secret.

For compatibility with installations that hard-link the binary as
ssss-split and ssss-combine, the command is inferred from the program name
when it contains "split" or "combine".
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getssss/ssss"
	"github.com/getssss/ssss/config"
	"github.com/getssss/ssss/logging"
	"github.com/getssss/ssss/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

var log *logrus.Logger

func init() {
	log = logging.NewLogger("CMD")
}

const exitErrorGeneric = 1

// maxTokenLen bounds the operator token prepended to share lines.
const maxTokenLen = 24

// memlockFailed records whether the startup memory lock failed; the -M
// flag turns it into a fatal condition.
var memlockFailed bool

func main() {
	if err := lockMemory(); err != nil {
		memlockFailed = true
		if hint := lockMemoryHint(err); hint != "" {
			warnf("couldn't get memory lock (%s)", hint)
		} else {
			warnf("couldn't get memory lock")
		}
	}

	app := cli.NewApp()
	app.Name = "ssss"
	app.Usage = "split and combine secrets using Shamir's Secret Sharing Scheme"
	app.Version = version.Version
	cli.VersionPrinter = version.PrintVersion
	app.Commands = []cli.Command{
		splitCommand(),
		combineCommand(),
	}

	if err := app.Run(dispatchArgs(os.Args)); err != nil {
		os.Exit(exitErrorGeneric)
	}
}

// dispatchArgs inserts the command implied by the program name, so that
// ssss-split and ssss-combine hard links keep their historical interface.
func dispatchArgs(args []string) []string {
	name := filepath.Base(args[0])
	var command string
	switch {
	case strings.Contains(name, "split"):
		command = "split"
	case strings.Contains(name, "combine"):
		command = "combine"
	default:
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[0], command)
	return append(out, args[1:]...)
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "threshold, t",
			Usage: "number of shares required to reconstruct the secret",
		},
		cli.BoolFlag{
			Name:  "hex, x",
			Usage: "read and write the secret as hex instead of ASCII",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "suppress prompts and banners",
		},
		cli.BoolFlag{
			Name:  "Q",
			Usage: "suppress warnings as well as prompts",
		},
		cli.BoolFlag{
			Name:  "D",
			Usage: "disable the diffusion layer on the secret",
		},
		cli.BoolFlag{
			Name:  "M",
			Usage: "abort when the memory lock could not be acquired",
		},
		cli.BoolFlag{
			Name:  "version, v",
			Usage: "print the version",
		},
	}
}

// printVersionRequested honors -v after program-name dispatch turned the
// historical single-purpose invocation into a subcommand one.
func printVersionRequested(c *cli.Context) bool {
	if c.Bool("version") {
		version.PrintVersion(c)
		return true
	}
	return false
}

// options is the resolved configuration for one invocation: flags merged
// over the optional defaults file, flags winning.
type options struct {
	threshold int
	shares    int
	security  int
	token     string
	hex       bool
	quiet     bool
	diffusion bool
}

func resolveOptions(c *cli.Context) (*options, error) {
	file, err := config.Load()
	if err != nil {
		return nil, fatalf("invalid config file: %s", err)
	}

	o := &options{
		threshold: c.Int("threshold"),
		shares:    c.Int("shares"),
		security:  c.Int("security"),
		token:     c.String("token"),
		hex:       c.Bool("hex"),
		quiet:     c.Bool("quiet") || c.Bool("Q") || file.Quiet,
		diffusion: true,
	}
	if o.token == "" {
		o.token = file.Token
	}
	if file.Diffusion != nil {
		o.diffusion = *file.Diffusion
	}
	if c.Bool("D") {
		o.diffusion = false
	}

	logging.Configure(o.quiet, c.Bool("Q"))

	if c.Bool("M") && memlockFailed {
		return nil, fatalf("memory lock is required to proceed")
	}
	return o, nil
}

// fatalf builds the single-line diagnostic every fatal condition turns
// into, ringing the terminal bell when stderr is a tty.
func fatalf(format string, args ...interface{}) error {
	bell()
	return cli.NewExitError("FATAL: "+fmt.Sprintf(format, args...)+".", exitErrorGeneric)
}

func warnf(format string, args ...interface{}) {
	if !log.IsLevelEnabled(logrus.WarnLevel) {
		return
	}
	bell()
	log.Warnf(format, args...)
}

func bell() {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprint(os.Stderr, "\a")
	}
}

// toExitError converts a driver error for the terminal, preferring the
// operator-facing rendering when one is attached.
func toExitError(err error) error {
	var uerr ssss.UserError
	if errors.As(err, &uerr) {
		bell()
		return cli.NewExitError(uerr.UserError(), exitErrorGeneric)
	}
	return fatalf("%s", err)
}
