// Command layoutdump prints every native structure layout the binding
// encodes or decodes: struct size plus the byte offset and width of each
// field. Diff the output against the offsets in webgpu.h (offsetof/sizeof
// dumped from a C translation unit) when moving to a new Dawn revision.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/agiangrant/wgpu/internal/abi"
)

func main() {
	only := flag.String("struct", "", "print only the named struct")
	flag.Parse()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	found := false
	for _, l := range abi.Layouts() {
		if *only != "" && l.Name != *only {
			continue
		}
		found = true
		fmt.Fprintf(w, "%s\tsize=%d\n", l.Name, l.Size)
		for _, f := range l.Fields {
			fmt.Fprintf(w, "  %s\toff=%d\twidth=%d\n", f.Name, f.Off, f.Width)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	if !found {
		fmt.Fprintf(os.Stderr, "no struct named %q\n", *only)
		os.Exit(1)
	}
}
