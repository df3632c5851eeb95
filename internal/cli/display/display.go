// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package display

import (
	"fmt"
	"io"

	"github.com/platform-engineering-labs/hotreload"
)

func Header() string {
	return LightBlue(Tool) + " " + Grey("v"+hotreload.Version)
}

func Error(w io.Writer, msg string) {
	fmt.Fprint(w, Red("Error: "+msg+"\n"))
}

func Links() string {
	return "\n" + Gold("Code: ") + CodeURL +
		"\n" + Gold("Bugs: ") + CodeURL + "/issues"
}
