package dlx_test

import (
	"testing"

	"github.com/katalvlaran/dlx"
	"github.com/stretchr/testify/suite"
)

// MCCSuite exercises the minimum-cost variant against spec.md §8 scenario 7
// and the MCC-optimality invariant.
type MCCSuite struct {
	suite.Suite
}

func TestMCCSuite(t *testing.T) {
	suite.Run(t, new(MCCSuite))
}

func entry(item string) dlx.ColoredItem[string, string] {
	return dlx.ColoredItem[string, string]{Item: item}
}

func (s *MCCSuite) TestOptimalCoverPicksCheaperSplit() {
	options := []dlx.CostOption[string, string]{
		{Entries: []dlx.ColoredItem[string, string]{entry("A"), entry("B")}, Cost: 5},
		{Entries: []dlx.ColoredItem[string, string]{entry("A")}, Cost: 2},
		{Entries: []dlx.ColoredItem[string, string]{entry("B")}, Cost: 2},
	}
	sol, outcome, _, err := dlx.MinCostDLXC(options, []string{"A", "B"}, nil, nil, timeZero)
	s.Require().NoError(err)
	s.Require().Equal(dlx.Found, outcome)
	s.Require().Equal(4, sol.Cost)
	s.Require().Len(sol.Rows, 2)
}

func (s *MCCSuite) TestIteratorYieldsStrictlyDecreasingCost() {
	options := []dlx.CostOption[string, string]{
		{Entries: []dlx.ColoredItem[string, string]{entry("A"), entry("B")}, Cost: 5},
		{Entries: []dlx.ColoredItem[string, string]{entry("A")}, Cost: 2},
		{Entries: []dlx.ColoredItem[string, string]{entry("B")}, Cost: 2},
		{Entries: []dlx.ColoredItem[string, string]{entry("A"), entry("B")}, Cost: 1},
	}
	it, err := dlx.MinCostDLXCIter(options, []string{"A", "B"}, nil, nil)
	s.Require().NoError(err)

	var costs []int
	for {
		sol, ok := it.Next()
		if !ok {
			break
		}
		costs = append(costs, sol.Cost)
	}
	s.Require().NotEmpty(costs)
	for i := 1; i < len(costs); i++ {
		s.Require().Less(costs[i], costs[i-1])
	}
	s.Require().Equal(1, costs[len(costs)-1])
}

func (s *MCCSuite) TestFirstReturnsAnyFeasibleCover() {
	options := []dlx.CostOption[string, string]{
		{Entries: []dlx.ColoredItem[string, string]{entry("A"), entry("B")}, Cost: 5},
		{Entries: []dlx.ColoredItem[string, string]{entry("A")}, Cost: 2},
		{Entries: []dlx.ColoredItem[string, string]{entry("B")}, Cost: 2},
	}
	sol, outcome, _, err := dlx.MinCostDLXCFirst(options, []string{"A", "B"}, nil, nil, timeZero)
	s.Require().NoError(err)
	s.Require().Equal(dlx.Found, outcome)
	s.Require().GreaterOrEqual(sol.Cost, 0)
}

func (s *MCCSuite) TestUnsatisfiableReturnsNotFound() {
	options := []dlx.CostOption[string, string]{
		{Entries: []dlx.ColoredItem[string, string]{entry("A")}, Cost: 1},
	}
	_, outcome, _, err := dlx.MinCostDLXC(options, []string{"A", "B"}, nil, nil, timeZero)
	s.Require().NoError(err)
	s.Require().Equal(dlx.NotFound, outcome)
}

func (s *MCCSuite) TestTimeoutNeverLabelsProvisionalResultAsOptimal() {
	options := []dlx.CostOption[string, string]{
		{Entries: []dlx.ColoredItem[string, string]{entry("A")}, Cost: 1},
	}
	sol, outcome, _, err := dlx.MinCostDLXC(options, []string{"A"}, nil, nil, pastDeadline())
	s.Require().NoError(err)
	s.Require().Equal(dlx.TimedOut, outcome)
	s.Require().Empty(sol.Rows)
}
