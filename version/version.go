package version

import (
	"fmt"

	"github.com/urfave/cli"
)

// Version represents the value of the current semantic version
const Version = "0.6.0"

// PrintVersion handles the version command for ssss
func PrintVersion(c *cli.Context) {
	fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, c.App.Version)
}
