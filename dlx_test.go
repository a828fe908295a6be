package dlx_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/dlx"
	"github.com/stretchr/testify/suite"
)

// DLXSuite exercises the plain-DLX entry points against spec.md §8's seed
// scenarios, in the teacher's stretchr/testify suite style (see
// flow/dinic_test.go).
type DLXSuite struct {
	suite.Suite
}

func TestDLXSuite(t *testing.T) {
	suite.Run(t, new(DLXSuite))
}

func (s *DLXSuite) TestEmptyProblemYieldsOneEmptyCover() {
	cover, ok, _, err := dlx.First[int](nil, nil, nil)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Empty(cover)
}

func (s *DLXSuite) TestDroppedEmptyOptionSameAsEmptyProblem() {
	cover, ok, _, err := dlx.First[int]([][]int{{}}, nil, nil)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Empty(cover)
}

func (s *DLXSuite) TestSingleItemSingleOption() {
	cover, ok, _, err := dlx.First([][]int{{0}}, []int{0}, nil)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(dlx.Cover[int]{{0}}, cover)
}

func (s *DLXSuite) TestMultiItemSingleOption() {
	cover, ok, _, err := dlx.First([][]int{{0, 1, 2}}, []int{0, 1, 2}, nil)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(dlx.Cover[int]{{0, 1, 2}}, cover)
}

func (s *DLXSuite) TestTwoDistinctCovers() {
	options := [][]int{{0, 1, 2}, {3, 4, 5}, {3, 4}, {5}}
	it, err := dlx.Iter(options, []int{0, 1, 2, 3, 4, 5}, nil)
	s.Require().NoError(err)

	var covers []dlx.Cover[int]
	for {
		cover, ok := it.Next()
		if !ok {
			break
		}
		covers = append(covers, cover)
	}
	s.Require().Len(covers, 2)

	want := [][][]int{
		{{0, 1, 2}, {3, 4, 5}},
		{{0, 1, 2}, {3, 4}, {5}},
	}
	s.Require().Equal(want, coversToInts(covers))
}

func (s *DLXSuite) TestUnsatisfiableProblemYieldsNoCover() {
	options := [][]int{{0, 1, 2}, {3, 4, 5}, {4, 6}}
	_, ok, _, err := dlx.First(options, []int{0, 1, 2, 3, 4, 5, 6}, nil)
	s.Require().NoError(err)
	s.Require().False(ok)
}

func (s *DLXSuite) TestUnknownItemFailsConstruction() {
	_, err := dlx.Iter([][]int{{9}}, []int{0, 1}, nil)
	s.Require().Error(err)
	var unknown *dlx.UnknownItemError[int]
	s.Require().ErrorAs(err, &unknown)
	s.Equal(9, unknown.Item)
	s.Equal(0, unknown.OptionIndex)
}

func (s *DLXSuite) TestExactCoverSoundness() {
	options := [][]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {0, 2}, {1, 3}}
	primaries := []int{0, 1, 2, 3}
	it, err := dlx.Iter(options, primaries, nil)
	s.Require().NoError(err)

	for {
		cover, ok := it.Next()
		if !ok {
			break
		}
		seen := map[int]bool{}
		for _, row := range cover {
			for _, item := range row {
				s.Require().False(seen[item], "item %d covered twice", item)
				seen[item] = true
			}
		}
		for _, p := range primaries {
			s.Require().True(seen[p], "item %d never covered", p)
		}
	}
}

func (s *DLXSuite) TestCompletenessAgainstBruteForce() {
	options := [][]int{{0}, {1}, {0, 1}, {2}, {1, 2}}
	primaries := []int{0, 1, 2}

	it, err := dlx.Iter(options, primaries, nil)
	s.Require().NoError(err)
	var got [][]int
	for {
		cover, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, flattenIndices(options, cover))
	}

	want := bruteForceExactCovers(options, primaries)
	s.Require().ElementsMatch(want, got)
}

func (s *DLXSuite) TestSecondaryItemNeedNotBeCovered() {
	// 100 is secondary: no option touches it, yet {0},{1} is a valid
	// cover.
	options := [][]int{{0}, {1}}
	cover, ok, _, err := dlx.First(options, []int{0, 1}, []int{100})
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Len(cover, 2)
}

// coversToInts normalises []dlx.Cover[int] into sorted [][][]int for
// comparison independent of row ordering inside each solution.
func coversToInts(covers []dlx.Cover[int]) [][][]int {
	out := make([][][]int, len(covers))
	for i, c := range covers {
		rows := make([][]int, len(c))
		for j, r := range c {
			rows[j] = append([]int{}, r...)
		}
		sort.Slice(rows, func(a, b int) bool { return rows[a][0] < rows[b][0] })
		out[i] = rows
	}
	return out
}

func flattenIndices(options [][]int, cover dlx.Cover[int]) []int {
	used := map[int]bool{}
	for i, opt := range options {
		for _, row := range cover {
			if sameSet(opt, row) {
				used[i] = true
			}
		}
	}
	var idx []int
	for i := range options {
		if used[i] {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	return idx
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	am := map[int]bool{}
	for _, v := range a {
		am[v] = true
	}
	for _, v := range b {
		if !am[v] {
			return false
		}
	}
	return true
}

// bruteForceExactCovers enumerates every subset of options and keeps those
// that partition the primary items exactly (spec.md §8 invariant 4).
func bruteForceExactCovers(options [][]int, primaries []int) [][]int {
	var out [][]int
	n := len(options)
	for mask := 0; mask < (1 << n); mask++ {
		seen := map[int]int{}
		var idx []int
		ok := true
		for i := 0; i < n; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			idx = append(idx, i)
			for _, item := range options[i] {
				seen[item]++
			}
		}
		for _, p := range primaries {
			if seen[p] != 1 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for item, count := range seen {
			if count > 1 {
				isPrimary := false
				for _, p := range primaries {
					if p == item {
						isPrimary = true
					}
				}
				if isPrimary {
					ok = false
				}
			}
		}
		if ok {
			out = append(out, idx)
		}
	}
	return out
}
