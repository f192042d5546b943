package report

import (
	"context"
	"slices"

	"github.com/orayew2002/rast-html/domain"
)

// group is one partition of rows sharing a level key.
type group struct {
	key  string
	rows []domain.Row
}

// partition splits rows by their key at level. Groups appear in the order of
// their first row and keep the relative order of their rows.
func partition(rows []domain.Row, level domain.Level) []group {
	var groups []group
	index := make(map[string]int)

	for _, row := range rows {
		k := Key(row, level)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].rows = append(groups[i].rows, row)
	}
	return groups
}

type grouper struct {
	spec   domain.Spec
	header []string
}

// build returns the nodes for rows at heading depth (1-indexed). Once depth
// passes the last heading level the rows are rendered as leaf tables.
func (g *grouper) build(ctx context.Context, rows []domain.Row, depth int) ([]domain.Node, error) {
	if depth > g.spec.HeadingLevels() {
		return g.leaf(rows), nil
	}

	var nodes []domain.Node
	for _, p := range partition(rows, g.spec.Levels[depth-1]) {
		section, err := g.section(ctx, p, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, section...)
	}
	return nodes, nil
}

// section emits the heading of p, if its key is non-empty, followed by its
// children.
func (g *grouper) section(ctx context.Context, p group, depth int) ([]domain.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	children, err := g.build(ctx, p.rows, depth+1)
	if err != nil {
		return nil, err
	}

	if p.key == "" {
		return children, nil
	}

	nodes := make([]domain.Node, 0, len(children)+1)
	nodes = append(nodes, domain.Heading{Level: depth, Text: p.key})
	return append(nodes, children...), nil
}

// leaf splits rows into runs of consecutive identical description keys and
// emits an optional description plus one table per run.
func (g *grouper) leaf(rows []domain.Row) []domain.Node {
	var nodes []domain.Node
	desc := g.spec.Description()

	start := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && Key(rows[i], desc) == Key(rows[start], desc) {
			continue
		}
		nodes = append(nodes, g.run(rows[start:i], Key(rows[start], desc))...)
		start = i
	}
	return nodes
}

func (g *grouper) run(rows []domain.Row, key string) []domain.Node {
	var nodes []domain.Node
	if key != "" {
		nodes = append(nodes, domain.Description{Text: key})
	}

	table := domain.Table{
		Header: slices.Clone(g.header),
		Rows:   make([][]string, len(rows)),
	}
	for i, row := range rows {
		cells := make([]string, len(g.spec.Columns))
		for j, col := range g.spec.Columns {
			cells[j] = row.Cell(col)
		}
		table.Rows[i] = cells
	}

	return append(nodes, table)
}
