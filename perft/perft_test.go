package perft

import (
	"strings"
	"testing"

	"github.com/hayashogi/shogicore/shogi"
)

func TestLeavesStartposDepth1(t *testing.T) {
	b := shogi.Startpos()
	if got, want := Leaves(b, 1), uint64(30); got != want {
		t.Errorf("perft(1) from startpos = %d, want %d", got, want)
	}
}

func TestLeavesStartposDepth2(t *testing.T) {
	b := shogi.Startpos()
	if got, want := Leaves(b, 2), uint64(900); got != want {
		t.Errorf("perft(2) from startpos = %d, want %d", got, want)
	}
}

func TestDivideSumsToLeaves(t *testing.T) {
	b := shogi.Startpos()
	div := Divide(b, 2)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Leaves(b, 2); sum != want {
		t.Errorf("sum of Divide(b, 2) = %d, want perft(2) = %d", sum, want)
	}
	if len(div) != 30 {
		t.Errorf("Divide produced %d first moves, want 30", len(div))
	}
}

func TestCountZeroDepthIsOneLeaf(t *testing.T) {
	b := shogi.Startpos()
	co := Count(b, 0)
	if co.Nodes != 1 {
		t.Errorf("Count(b, 0).Nodes = %d, want 1", co.Nodes)
	}
}

func TestCounterStringIncludesNodes(t *testing.T) {
	co := Counters{Nodes: 30, Captures: 0, Promotions: 0, Drops: 0, Checks: 0}
	if s := co.String(); !strings.Contains(s, "nodes=30") {
		t.Errorf("Counters.String() = %q, want it to include nodes=30", s)
	}
}
