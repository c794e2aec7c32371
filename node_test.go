package kozue

// testNode is a minimal host tree used across the engine tests. The
// real host tree lives outside the core; the engines only ever see the
// Node interface.
type testNode struct {
	name     string
	parent   *testNode
	children []*testNode
	ready    bool
	obj      any
}

func newTestNode(name string, obj any) *testNode {
	return &testNode{
		name:  name,
		ready: true,
		obj:   obj,
	}
}

func (n *testNode) add(child *testNode) *testNode {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *testNode) Name() string { return n.name }

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) Children() []Node {
	children := make([]Node, len(n.children))
	for i, child := range n.children {
		children[i] = child
	}
	return children
}

func (n *testNode) Ready() bool { return n.ready }

func (n *testNode) Object() any { return n.obj }

// intSink records Inject calls for int values.
type intSink struct {
	name string
	log  *[]string
	got  []int
}

func (s *intSink) Inject(value int) {
	s.got = append(s.got, value)
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

// intSource serves int values and counts reads.
type intSource struct {
	value int
	reads int
}

func (s *intSource) InjectValue() int {
	s.reads++
	return s.value
}
