package markdown

import (
	"strings"

	"github.com/npillmayer/markdoc/input/markdown/inline"
)

// isTableRow reports whether a stripped line is delimited by pipes on
// both ends.
func isTableRow(stripped string) bool {
	return len(stripped) >= 2 && strings.HasPrefix(stripped, "|") &&
		strings.HasSuffix(stripped, "|")
}

// isSeparatorRow reports whether a table-delimited line is a pure
// header separator, composed only of dashes, colons, pipes and spaces.
func isSeparatorRow(stripped string) bool {
	for _, ch := range stripped {
		switch ch {
		case '-', '|', ':', ' ':
		default:
			return false
		}
	}
	return true
}

// assembleTable builds a rectangular grid of tokenized cells from
// buffered table rows. The column count is fixed by the first row;
// short rows are padded with empty cells, long rows are truncated.
// Cells support emphasis and math, but no image references.
func assembleTable(rows []string) [][][]inline.Span {
	if len(rows) == 0 {
		return nil
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		row = strings.Trim(strings.TrimSpace(row), "|")
		split := strings.Split(row, "|")
		for j, cell := range split {
			split[j] = strings.TrimSpace(cell)
		}
		cells[i] = split
	}
	ncols := len(cells[0])
	grid := make([][][]inline.Span, len(cells))
	for i, row := range cells {
		if len(row) != ncols {
			tracer().Infof("ragged table row %d: %d cells, expected %d", i, len(row), ncols)
		}
		grid[i] = make([][]inline.Span, ncols)
		for j := 0; j < ncols; j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			grid[i][j] = inline.Tokenize(cell)
		}
	}
	return grid
}

// flushTable converts the buffered rows into a Table event and resets
// the table state. An empty buffer produces no event.
func (s *scanner) flushTable() {
	defer func() {
		s.tableBuf = nil
		s.state = stateNormal
	}()
	if len(s.tableBuf) == 0 {
		return
	}
	tracer().Debugf("flushing table with %d rows", len(s.tableBuf))
	s.emit(Table{Grid: assembleTable(s.tableBuf)})
}
