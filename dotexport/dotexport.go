// Package dotexport is the thin, optional adapter for spec.md §1's
// out-of-scope "dot-file graph export" collaborator. It walks a
// *posegraph.Graph and renders it with github.com/goccy/go-graphviz, the
// graph-export dependency carried in the teacher's go.mod
// (_examples/viamrobotics-rdk). Deliberately minimal: no layout tuning, no
// rendering formats beyond DOT text. mapper never imports this package —
// export is something a caller does to a finished graph, not something the
// mapper orchestrates.
package dotexport

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"go.viam.com/slam3d/posegraph"
)

// WriteDOT renders g as DOT text to w: one node per vertex, labeled with its
// id and sensor name, and one edge per posegraph edge, labeled with its
// sensor and label ("odometry" or "loop_closure").
func WriteDOT(w io.Writer, g *posegraph.Graph) error {
	gv := graphviz.New()
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return err
	}
	defer graph.Close()

	nodes := make(map[uint64]*cgraph.Node, g.VertexCount())
	for _, v := range g.Vertices() {
		name := fmt.Sprintf("v%d", v.ID)
		node, err := graph.CreateNode(name)
		if err != nil {
			return err
		}
		node.SetLabel(fmt.Sprintf("%d\n%s", v.ID, v.Measurement.SensorName()))
		nodes[v.ID] = node
	}

	for i, e := range g.Edges() {
		src, ok := nodes[e.SourceID]
		if !ok {
			return posegraph.ErrBadElementType
		}
		tgt, ok := nodes[e.TargetID]
		if !ok {
			return posegraph.ErrBadElementType
		}
		edge, err := graph.CreateEdge(fmt.Sprintf("e%d", i), src, tgt)
		if err != nil {
			return err
		}
		edge.SetLabel(fmt.Sprintf("%s/%s", e.Sensor, e.Label))
	}

	var buf bytes.Buffer
	if err := gv.Render(graph, graphviz.XDOT, &buf); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}
