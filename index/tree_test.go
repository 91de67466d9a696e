package index_test

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/warehouse/index"
	"github.com/katalvlaran/warehouse/product"
)

func mustProduct(t testing.TB, id, name string) *product.Product {
	t.Helper()
	p, err := product.New(id, name, "Gen", 1.0)
	require.NoError(t, err)

	return p
}

func collectIDs(tr *index.Tree) []string {
	var ids []string
	for p := range tr.InOrder() {
		ids = append(ids, p.ID())
	}

	return ids
}

type TreeSuite struct {
	suite.Suite
	tr *index.Tree
}

func (s *TreeSuite) SetupTest() {
	s.tr = index.New()
}

func (s *TreeSuite) insert(id, name string) bool {
	stored, err := s.tr.Insert(mustProduct(s.T(), id, name))
	s.Require().NoError(err)

	return stored
}

func (s *TreeSuite) TestSearchExisting() {
	require := require.New(s.T())
	drill := mustProduct(s.T(), "P1", "Drill")
	_, err := s.tr.Insert(drill)
	require.NoError(err)

	got, ok := s.tr.Search("P1")
	require.True(ok, "could not find existing product")
	require.Same(drill, got)
}

func (s *TreeSuite) TestSearchMissing() {
	require := require.New(s.T())
	got, ok := s.tr.Search("P1")
	require.False(ok, "empty tree must not find anything")
	require.Nil(got)

	s.insert("P1", "Drill")
	s.insert("P3", "Saw")
	_, ok = s.tr.Search("P2")
	require.False(ok)
	_, ok = s.tr.Search("")
	require.False(ok)
}

func (s *TreeSuite) TestInOrderAscending() {
	require := require.New(s.T())
	for _, id := range []string{"M", "C", "X", "A", "E", "Q", "Z", "B"} {
		require.True(s.insert(id, "item "+id))
	}
	require.Equal([]string{"A", "B", "C", "E", "M", "Q", "X", "Z"}, collectIDs(s.tr))
	require.Equal(8, s.tr.Len())
}

func (s *TreeSuite) TestInOrderIsLexicographic() {
	require := require.New(s.T())
	for _, id := range []string{"P10", "P2", "P1"} {
		s.insert(id, id)
	}
	// byte-wise string order, not numeric
	require.Equal([]string{"P1", "P10", "P2"}, collectIDs(s.tr))
}

func (s *TreeSuite) TestDuplicateDiscarded() {
	require := require.New(s.T())
	first := mustProduct(s.T(), "P1", "Item 1")
	second := mustProduct(s.T(), "P1", "Item 1 (dup)")

	stored, err := s.tr.Insert(first)
	require.NoError(err)
	require.True(stored)

	stored, err = s.tr.Insert(second)
	require.NoError(err)
	require.False(stored, "duplicate must be reported as discarded")

	got, ok := s.tr.Search("P1")
	require.True(ok)
	require.Same(first, got, "original record must survive")
	require.Equal(1, s.tr.Len(), "no second node may be created")
	require.Equal([]string{"P1"}, collectIDs(s.tr))
}

func (s *TreeSuite) TestDistinctIDsBothStored() {
	require := require.New(s.T())
	require.True(s.insert("P1", "Item 1"))
	require.True(s.insert("P2", "Item 2"))
	require.Equal(2, s.tr.Len())
}

func (s *TreeSuite) TestNilProduct() {
	stored, err := s.tr.Insert(nil)
	s.Require().False(stored)
	s.Require().True(errors.Is(err, index.ErrNilProduct))
	s.Require().Equal(0, s.tr.Len())
}

func (s *TreeSuite) TestEarlyStop() {
	require := require.New(s.T())
	for _, id := range []string{"D", "B", "F", "A", "C", "E", "G"} {
		s.insert(id, id)
	}
	var seen []string
	for p := range s.tr.InOrder() {
		seen = append(seen, p.ID())
		if p.ID() == "C" {
			break
		}
	}
	require.Equal([]string{"A", "B", "C"}, seen)

	// restartable
	require.Len(collectIDs(s.tr), 7)
}

func (s *TreeSuite) TestMinMax() {
	require := require.New(s.T())
	_, ok := s.tr.Min()
	require.False(ok)
	_, ok = s.tr.Max()
	require.False(ok)

	for _, id := range []string{"K", "D", "T", "A", "Z"} {
		s.insert(id, id)
	}
	lo, ok := s.tr.Min()
	require.True(ok)
	require.Equal("A", lo.ID())
	hi, ok := s.tr.Max()
	require.True(ok)
	require.Equal("Z", hi.ID())
}

func (s *TreeSuite) TestDegenerateHeight() {
	require := require.New(s.T())
	require.Equal(0, s.tr.Height())
	for i := 0; i < 64; i++ {
		s.insert(fmt.Sprintf("P%03d", i), "seq")
	}
	// increasing keys produce a right-leaning chain
	require.Equal(64, s.tr.Height())
	p, ok := s.tr.Search("P063")
	require.True(ok)
	require.Equal("P063", p.ID())
}

func TestTreeSuite(t *testing.T) {
	suite.Run(t, new(TreeSuite))
}

func TestTree_OverwritePolicy(t *testing.T) {
	var collisions int
	tr := index.New(
		index.WithDuplicatePolicy(index.OverwriteDuplicates),
		index.WithOnDuplicate(func(existing, incoming *product.Product) {
			collisions++
			require.Equal(t, existing.ID(), incoming.ID())
		}),
	)
	first := mustProduct(t, "P1", "old")
	second := mustProduct(t, "P1", "new")

	_, err := tr.Insert(first)
	require.NoError(t, err)
	stored, err := tr.Insert(second)
	require.NoError(t, err)
	require.True(t, stored)

	got, ok := tr.Search("P1")
	require.True(t, ok)
	require.Same(t, second, got)
	require.Equal(t, 1, tr.Len())
	require.Equal(t, 1, collisions)
}

func TestTree_DiscardHookObservesCollision(t *testing.T) {
	var rejected *product.Product
	tr := index.New(index.WithOnDuplicate(func(_, incoming *product.Product) { rejected = incoming }))
	_, _ = tr.Insert(mustProduct(t, "P1", "a"))
	dup := mustProduct(t, "P1", "b")
	_, _ = tr.Insert(dup)
	require.Same(t, dup, rejected)
}

func TestTree_RandomInsertOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := index.New()
	first := make(map[string]*product.Product)

	for i := 0; i < 500; i++ {
		id := fmt.Sprintf("SKU-%04d", rng.Intn(300))
		p := mustProduct(t, id, fmt.Sprintf("n%d", i))
		_, err := tr.Insert(p)
		require.NoError(t, err)
		if _, seen := first[id]; !seen {
			first[id] = p
		}
	}

	require.Equal(t, len(first), tr.Len())
	for id, p := range first {
		got, ok := tr.Search(id)
		require.True(t, ok, id)
		require.Same(t, p, got, "first occurrence must be kept for %s", id)
	}

	ids := collectIDs(tr)
	require.True(t, sort.StringsAreSorted(ids))
	for i := 1; i < len(ids); i++ {
		require.Less(t, ids[i-1], ids[i], "keys must be strictly increasing")
	}
}

func TestDuplicatePolicy_String(t *testing.T) {
	require.Equal(t, "discard", index.DiscardDuplicates.String())
	require.Equal(t, "overwrite", index.OverwriteDuplicates.String())
	require.Equal(t, "unknown", index.DuplicatePolicy(9).String())
}
