package version

import (
	"fmt"
	"io"
)

var (
	Version string
	Commit  string
)

func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "arraystack version: %s, Git sha: %s\n", Version, Commit)
}
