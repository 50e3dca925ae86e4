package simplify

import (
	"strings"

	"github.com/logicring/clc/logic"
)

// logNode emits one debug line per node as it is built. No-op if no
// logger was attached via WithLogger.
func (b *Builder) logNode(n *Node) {
	if b.cfg.logger == nil {
		return
	}
	b.cfg.logger.Debug().Msg(formatNode(b, n))
}

func formatNode(b *Builder, n *Node) string {
	var sb strings.Builder
	sb.WriteString(n.Value.Name())
	sb.WriteString(" --> ")

	masks := n.Poly.Masks()
	if len(masks) == 0 {
		sb.WriteString("0")
		return sb.String()
	}

	chains := make([]string, 0, len(masks))
	for _, m := range masks {
		chains = append(chains, formatAndChain(b, m))
	}
	sb.WriteString(strings.Join(chains, " + "))
	return sb.String()
}

// formatAndChain renders one monomial: "-1" for the all-ones sentinel, ""
// for the zero sentinel or an empty mask, a bare leaf name for a one-hot
// mask, or leaf names joined by " * " for a true conjunction.
func formatAndChain(b *Builder, mask logic.Monomial) string {
	if mask == logic.AllOnesSentinel {
		return "-1"
	}
	if mask&logic.ZeroSentinel != 0 || mask == 0 {
		return ""
	}
	if id, ok := logic.IsLeafMonomial(mask); ok {
		return b.LeafAt(id).Name()
	}

	var names []string
	for id := 0; id < 62; id++ {
		if mask&logic.LeafMonomial(id) != 0 {
			names = append(names, b.LeafAt(id).Name())
		}
	}
	return strings.Join(names, " * ")
}
