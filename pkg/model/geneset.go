package model

// GeneSet is one line of a gene-set database. Members keep the order of the
// source and are not deduplicated.
type GeneSet struct {
	ID      string
	Label   string
	Members []string
}

func (s *GeneSet) Size() int {
	return len(s.Members)
}

// Collection is every gene set loaded for one request plus the universe of
// distinct member ids across all of them.
type Collection struct {
	Sets     []*GeneSet
	Universe map[string]struct{}

	index map[string]int
}

func NewCollection() *Collection {
	return &Collection{
		Sets:     make([]*GeneSet, 0, 64),
		Universe: make(map[string]struct{}),
		index:    make(map[string]int),
	}
}

// Add registers a gene set. A set id seen before keeps its position but takes
// the new members; the universe keeps members of both.
func (c *Collection) Add(set *GeneSet) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if c.Universe == nil {
		c.Universe = make(map[string]struct{})
	}

	for _, id := range set.Members {
		c.Universe[id] = struct{}{}
	}

	if pos, ok := c.index[set.ID]; ok {
		c.Sets[pos] = set
		return
	}
	c.index[set.ID] = len(c.Sets)
	c.Sets = append(c.Sets, set)
}

// Get returns the set registered under id.
func (c *Collection) Get(id string) (*GeneSet, bool) {
	pos, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.Sets[pos], true
}

// UniverseSize is M, the number of distinct genes in any loaded set.
func (c *Collection) UniverseSize() int {
	return len(c.Universe)
}
