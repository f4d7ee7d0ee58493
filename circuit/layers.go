package circuit

// Layering is the result of assigning every wire of a circuit a layer
// number: its distance in gates from the primary inputs. Gates are grouped
// into buckets by the layer of their output wire. Gates inside one bucket
// never consume each other's outputs, so a bucket can be evaluated in any
// order, or in parallel, once all lower layers are done.
type Layering struct {
	wireLayer []int
	buckets   [][]GateID
}

// Layers assigns a layer to every wire of the circuit.
//
// Marked input wires sit at layer 0. A gate is scheduled as soon as both of
// its input wires have a layer and its output wire receives the maximum of
// the two plus one. A gate whose output wire already carries a layer is
// skipped: the first producer wins. Scheduling is a worklist over freshly
// layered wires, so the pass runs in linear time and terminates even on a
// cyclic circuit: a cycle starves its gates, the wires they drive keep no
// layer, and the first such wire is reported as a *EmptyWireError. The same
// error covers wires that are plainly disconnected from the inputs.
func Layers(c *Circuit) (*Layering, error) {
	wireLayer := make([]int, c.nbWires)
	for i := range wireLayer {
		wireLayer[i] = -1
	}

	conns := c.connections()

	// per gate, the number of distinct input wires still waiting for a layer
	missing := make([]int, len(c.gates))
	for i, g := range c.gates {
		missing[i] = 2
		if g.X == g.Y {
			missing[i] = 1
		}
	}

	buckets := [][]GateID{}
	queue := make([]WireID, 0, c.nbWires)

	assign := func(w WireID, layer int) {
		wireLayer[w] = layer
		for len(buckets) <= layer {
			buckets = append(buckets, nil)
		}
		queue = append(queue, w)
	}

	for _, in := range c.inputs {
		if wireLayer[in] == -1 {
			assign(in, 0)
		}
	}

	for head := 0; head < len(queue); head++ {
		w := queue[head]
		for _, gid := range conns[w].toGates {
			missing[gid]--
			if missing[gid] != 0 {
				continue
			}
			g := c.gates[gid]
			if wireLayer[g.Out] != -1 {
				continue
			}
			layer := max(wireLayer[g.X], wireLayer[g.Y]) + 1
			assign(g.Out, layer)
			buckets[layer] = append(buckets[layer], gid)
		}
	}

	for w, layer := range wireLayer {
		if layer == -1 {
			return nil, &EmptyWireError{Wire: WireID(w)}
		}
	}

	return &Layering{wireLayer: wireLayer, buckets: buckets}, nil
}

// WireLayer returns the layer assigned to w. Layers only returns a Layering
// with every wire assigned, so no presence flag is needed.
func (l *Layering) WireLayer(w WireID) int {
	return l.wireLayer[w]
}

// NbLayers returns the number of layers, counting the input layer 0. Bucket
// 0 exists and is always empty: gate outputs start at layer 1.
func (l *Layering) NbLayers() int {
	return len(l.buckets)
}

// Bucket returns the identifiers of the gates whose output wire sits at the
// given layer. The returned slice is shared with the Layering and must not
// be modified.
func (l *Layering) Bucket(layer int) []GateID {
	return l.buckets[layer]
}

// Buckets returns a deep copy of all buckets, indexed by layer
func (l *Layering) Buckets() [][]GateID {
	out := make([][]GateID, len(l.buckets))
	for i, b := range l.buckets {
		out[i] = append([]GateID(nil), b...)
	}
	return out
}
