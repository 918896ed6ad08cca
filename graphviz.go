package freeform

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// ToDot returns the structure of the Network in the DOT language. Inputs are drawn as boxes, bias
// Neurons as diamonds, and recurrent Connections as dashed edges. Every edge is labelled with its
// weight.
func (net *Network) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := g.AddAttr("G", "rankdir", "LR"); err != nil {
		return "", err
	}

	for _, n := range net.neurons {
		attrs := map[string]string{
			"label": strconv.Quote(n.String()),
		}

		switch n.kind {
		case input:
			attrs["shape"] = "box"
		case bias:
			attrs["shape"] = "diamond"
		default:
			attrs["shape"] = "ellipse"
			if n.IsOutput() {
				attrs["peripheries"] = "2"
			}
		}

		if err := g.AddNode("G", nodeName(n), attrs); err != nil {
			return "", errors.Wrapf(err, "Failed to add Neuron %v", n)
		}
	}

	for _, c := range net.conns {
		attrs := map[string]string{
			"label": strconv.Quote(fmt.Sprintf("%.4g", c.weight)),
		}
		if c.recurrent {
			attrs["style"] = "dashed"
		}

		if err := g.AddEdge(nodeName(c.source), nodeName(c.target), true, attrs); err != nil {
			return "", errors.Wrapf(err, "Failed to add Connection %d", c.id)
		}
	}

	return g.String(), nil
}

func nodeName(n *Neuron) string {
	return "n" + strconv.Itoa(n.id)
}
