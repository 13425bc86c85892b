package command

// render.go holds the shared output helpers: list footers and the query
// bookmark line that lets a view be restored with --query.

import (
	"fmt"
	"io"

	"dramahub/internal/console"
)

// renderPager prints the list footer: position, total and whether prev/next
// are available.
func renderPager(out io.Writer, p console.Pager) {
	if p.Counted {
		fmt.Fprintf(out, "Page %d of %d (%d total)", p.Page, p.TotalPages(), p.Total)
	} else {
		fmt.Fprintf(out, "Page %d (%d shown)", p.Page, p.Returned)
	}

	switch {
	case p.HasPrev() && p.HasNext():
		fmt.Fprint(out, " | use --page to move\n")
	case p.HasNext():
		fmt.Fprintf(out, " | next: --page %d\n", p.Page+1)
	case p.HasPrev():
		fmt.Fprintf(out, " | prev: --page %d\n", p.Page-1)
	default:
		fmt.Fprintln(out)
	}
}

// renderQueryLine prints the URL-style encoding of the current view state so
// it can be bookmarked and passed back via --query.
func renderQueryLine(out io.Writer, q console.Query) {
	fmt.Fprintf(out, "View: %s\n", q.Values().Encode())
}

func divider(out io.Writer) {
	fmt.Fprintln(out, "--------------------------------------------------")
}
