package kozue

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type childBlocker struct {
	intSink
	block func(child Node, value int) bool
}

func (b *childBlocker) ShouldBlock(child Node, value int) bool {
	return b.block(child, value)
}

type childInterceptor struct {
	intSink
	intercept func(child Node, value int) int
	calls     int
}

func (i *childInterceptor) Intercept(child Node, value int) int {
	i.calls++
	return i.intercept(child, value)
}

func TestPropagateBroadcast(t *testing.T) {
	t.Parallel()

	rootSink := &intSink{}
	bSink := &intSink{}
	cSink := &intSink{}
	dSink := &intSink{}

	root := newTestNode("root", rootSink)
	root.add(newTestNode("b", bSink))
	c := root.add(newTestNode("c", cSink))
	c.add(newTestNode("d", dSink))

	Propagate(root, 42)

	assert.Empty(t, rootSink.got, "origin must not receive its own value")
	assert.Equal(t, []int{42}, bSink.got)
	assert.Equal(t, []int{42}, cSink.got)
	assert.Equal(t, []int{42}, dSink.got)
}

func TestPropagateDeliveryOrder(t *testing.T) {
	t.Parallel()

	var order []string
	root := newTestNode("root", nil)
	b := root.add(newTestNode("b", &intSink{name: "b", log: &order}))
	b.add(newTestNode("c", &intSink{name: "c", log: &order}))
	root.add(newTestNode("d", &intSink{name: "d", log: &order}))

	Propagate(root, 1)

	assert.Equal(t, []string{"b", "c", "d"}, order, "delivery follows depth-first preorder")
}

func TestPropagateSubtreePruning(t *testing.T) {
	t.Parallel()

	blocker := &childBlocker{
		block: func(child Node, _ int) bool { return child.Name() == "c" },
	}
	cHost := &childInterceptor{
		intercept: func(_ Node, value int) int { return value },
	}
	dSink := &intSink{}

	root := newTestNode("root", nil)
	b := root.add(newTestNode("b", blocker))
	c := b.add(newTestNode("c", cHost))
	c.add(newTestNode("d", dSink))

	Propagate(root, 42)

	assert.Equal(t, []int{42}, blocker.got, "blocker still receives the value itself")
	assert.Empty(t, cHost.got, "blocked child must not be injected")
	assert.Zero(t, cHost.calls, "blocked child's interceptor must never run")
	assert.Empty(t, dSink.got, "blocking prunes the whole subtree")
}

func TestPropagatePerChildInterception(t *testing.T) {
	t.Parallel()

	interceptor := &childInterceptor{
		intercept: func(child Node, value int) int {
			if child.Name() == "left" {
				return value + 1
			}
			return value + 2
		},
	}
	left := &intSink{}
	right := &intSink{}

	root := newTestNode("root", nil)
	b := root.add(newTestNode("b", interceptor))
	b.add(newTestNode("left", left))
	b.add(newTestNode("right", right))

	Propagate(root, 40)

	assert.Equal(t, []int{40}, interceptor.got, "interceptor injects the un-intercepted value")
	assert.Equal(t, []int{41}, left.got)
	assert.Equal(t, []int{42}, right.got)
}

func TestPropagateOriginExemption(t *testing.T) {
	t.Parallel()

	origin := &childBlocker{
		block: func(Node, int) bool { return true },
	}
	child := &intSink{}

	root := newTestNode("root", origin)
	root.add(newTestNode("child", child))

	Propagate(root, 7)

	assert.Empty(t, origin.got, "origin's injectable role is skipped")
	assert.Equal(t, []int{7}, child.got, "origin's blocker role is skipped")
}

func TestPropagateOriginInterceptorApplies(t *testing.T) {
	t.Parallel()

	origin := &childInterceptor{
		intercept: func(_ Node, value int) int { return value * 2 },
	}
	child := &intSink{}

	root := newTestNode("root", origin)
	root.add(newTestNode("child", child))

	Propagate(root, 21)

	assert.Equal(t, []int{42}, child.got, "origin's interceptor still shapes outgoing values")
}

func TestPropagateBoundRegistry(t *testing.T) {
	t.Parallel()

	var ints []int
	var strs []string
	b := NewBindings()
	BindInjectable(b, func(v int) { ints = append(ints, v) })
	BindInjectable(b, func(v string) { strs = append(strs, v) })
	host := boundHost{bindings: b}

	root := newTestNode("root", nil)
	root.add(newTestNode("child", host))

	Propagate(root, 42)
	Propagate(root, "leaf")

	assert.Equal(t, []int{42}, ints)
	assert.Equal(t, []string{"leaf"}, strs)
}

func TestPropagateDeepTree(t *testing.T) {
	t.Parallel()

	const depth = 50_000

	root := newTestNode("n0", nil)
	current := root
	var sinks []*intSink
	for i := 1; i <= depth; i++ {
		sink := &intSink{}
		sinks = append(sinks, sink)
		current = current.add(newTestNode(fmt.Sprintf("n%d", i), sink))
	}

	Propagate(root, 1)

	for _, sink := range sinks {
		assert.Equal(t, []int{1}, sink.got)
	}
}

func TestPropagateLog(t *testing.T) {
	t.Parallel()

	var lines []string
	root := newTestNode("root", nil)
	root.add(newTestNode("child", &intSink{}))

	Propagate(root, 42, WithLog(func(msg string) {
		lines = append(lines, msg)
	}))

	assert.NotEmpty(t, lines)
	assert.True(t, strings.Contains(lines[0], "int"), "log names the value type: %q", lines[0])
	assert.True(t, strings.Contains(lines[0], "root"), "log names the origin: %q", lines[0])
}

type boundHost struct {
	bindings *Bindings
}

func (h boundHost) Bindings() *Bindings { return h.bindings }
