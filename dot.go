package dirglob

import (
	"fmt"
	"io"
)

// WriteDot writes a digraph representing the compiled plan to the writer
// (in GraphViz syntax). Each boundary between segments is a numbered node;
// between boundaries sits the automaton for that segment. Recursive
// wildcards are drawn as a self-loop plus an empty transition, since they
// consume zero or more whole components.
func (p *Pattern) WriteDot(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf("digraph {\n\trankdir=LR;\n")
	printf("\tlabel=%q;\n", p.Canonical())

	start := "."
	if p.Absolute {
		start = "/"
	}
	for i := 0; i <= len(p.Segments); i++ {
		label, shape := fmt.Sprint(i), "circle"
		switch i {
		case 0:
			label = start
		case len(p.Segments):
			shape = "doublecircle"
		}
		printf("\tseg_%d [label=%q, shape=%s];\n", i, label, shape)
	}

	for i := range p.Segments {
		s := &p.Segments[i]
		if s.Recursive() {
			printf("\tseg_%d -> seg_%d [label=\"**/\"];\n", i, i)
			printf("\tseg_%d -> seg_%d [label=\"ε\", style=dashed];\n", i, i+1)
			continue
		}

		printf("\tsubgraph cluster_%d {\n\t\tlabel=%q;\n\t\tstyle=dotted;\n", i, s.String())
		var accept []*state
		seen := make(map[*state]bool)
		q := []*state{s.initial}
		for len(q) > 0 {
			n := q[0]
			q = q[1:]
			if seen[n] {
				continue
			}
			seen[n] = true

			printf("\t\tstate_%p [label=\"\", shape=circle, width=0.2];\n", n)
			if n.Accept {
				accept = append(accept, n)
			}
			for _, e := range n.Out {
				printf("\t\tstate_%p -> state_%p [label=%q];\n", n, e.State, fmt.Sprint(e.Expr))
				if !seen[e.State] {
					q = append(q, e.State)
				}
			}
		}
		printf("\t}\n")

		printf("\tseg_%d -> state_%p [style=dashed];\n", i, s.initial)
		sep := "/"
		if i == len(p.Segments)-1 && !p.DirOnly {
			sep = ""
		}
		for _, n := range accept {
			printf("\tstate_%p -> seg_%d [label=%q, style=dashed];\n", n, i+1, sep)
		}
	}

	printf("}\n")
	return err
}
