package buffer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/chanedit/internal/channels"
)

// Delimiter separates the channel id from its name, and the name from an
// optional trailing "#" comment.
const Delimiter = "\t"

const header = `# One channel per line: <id><TAB><name>. Only the name is read back.
# Removing a line leaves that channel unchanged.
# Lines starting with "#" and text after a second TAB starting with "#" are ignored.
`

type Options struct {
	// Annotate adds the header and a kind/category comment per line.
	Annotate bool
}

// Format writes one line per channel. Names that cannot survive a round
// trip through the line format make it fail before anything is written.
// Surrounding spaces are written as they are but come back trimmed; Diff
// treats the trimmed form as unchanged.
func Format(w io.Writer, list []channels.Channel, opts Options) error {
	for _, c := range list {
		if strings.ContainsAny(c.Name, "\t\r\n") {
			return fmt.Errorf("channel %s: name %q contains a tab or line break and cannot be edited as text", c.ID, c.Name)
		}
	}

	bw := bufio.NewWriter(w)
	if opts.Annotate {
		bw.WriteString(header)
	}

	for _, c := range list {
		bw.WriteString(c.ID)
		bw.WriteString(Delimiter)
		bw.WriteString(c.Name)
		if opts.Annotate {
			bw.WriteString(Delimiter)
			bw.WriteString("# ")
			bw.WriteString(c.Annotation())
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func FormatString(list []channels.Channel, opts Options) (string, error) {
	var b strings.Builder
	if err := Format(&b, list, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}
