// Package table lays out key/value records as a fixed-width box-drawing
// table, measuring the visual width of cells that may carry terminal color
// escapes. Structural inconsistencies abort the whole render and are
// reported through the returned string, never a fault.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/baditaflorin/go_string_toolkit/internal/core/domain"
	"github.com/baditaflorin/go_string_toolkit/internal/core/normalize"
	"github.com/baditaflorin/go_string_toolkit/internal/pool"
	"github.com/baditaflorin/go_string_toolkit/internal/ports"
)

// NoDataMessage is returned for an empty record sequence. Empty input is not
// an error.
const NoDataMessage = "No data to display."

// Box-drawing glyph set.
const (
	topLeft     = "┌"
	topJoin     = "┬"
	topRight    = "┐"
	midLeft     = "├"
	midJoin     = "┼"
	midRight    = "┤"
	bottomLeft  = "└"
	bottomJoin  = "┴"
	bottomRight = "┘"
	vertical    = "│"
	horizontal  = "─"
)

// Renderer implements the box-drawing table layout.
type Renderer struct {
	logger   ports.Logger
	stripper ports.EscapeStripper
	builders *pool.BuilderPool
}

// NewRenderer creates a renderer that measures cell widths through stripper
// and reports progress through logger.
func NewRenderer(logger ports.Logger, stripper ports.EscapeStripper) *Renderer {
	return &Renderer{
		logger:   logger,
		stripper: stripper,
		builders: pool.NewBuilderPool(),
	}
}

// Render lays records out as a single multi-line string. The first record
// fixes the column order; later records may list the same keys in any order
// but must carry exactly that key set. Any schema or cell-value
// inconsistency converts the whole call into a sentinel error string
// prefixed "Error: ".
func (r *Renderer) Render(records []domain.Record) string {
	if len(records) == 0 {
		r.logger.Debug("No records to render")
		return NoDataMessage
	}

	schema := records[0].Keys()
	want := make(map[string]struct{}, len(schema))
	for _, k := range schema {
		want[k] = struct{}{}
	}
	for _, rec := range records[1:] {
		if !sameKeySet(rec, want) {
			r.logger.Error("Record key set disagrees with schema",
				"schema", schema,
				"row", flatten(rec),
			)
			return inconsistentRow(rec)
		}
	}

	widths := make([]int, len(schema))
	for i, k := range schema {
		widths[i] = r.stripper.VisualLength(k)
	}

	rows := make([][]string, len(records))
	for ri, rec := range records {
		row := make([]string, len(schema))
		for ci, key := range schema {
			value, _ := rec.Lookup(key)
			cell, ok := formatCell(value)
			if !ok {
				r.logger.Error("Record cell failed validation",
					"key", key,
					"row", flatten(rec),
				)
				return inconsistentRow(rec)
			}
			row[ci] = cell
			if w := r.stripper.VisualLength(cell); w > widths[ci] {
				widths[ci] = w
			}
		}
		rows[ri] = row
	}

	// One extra column of breathing room.
	for i := range widths {
		widths[i]++
	}

	sb := r.builders.Get()
	defer r.builders.Put(sb)

	r.writeBorder(sb, widths, topLeft, topJoin, topRight)
	r.writeRow(sb, schema, widths)
	r.writeBorder(sb, widths, midLeft, midJoin, midRight)
	for _, row := range rows {
		r.writeRow(sb, row, widths)
	}
	r.writeBottom(sb, widths)

	r.logger.Debug("Rendered table",
		"columns", len(schema),
		"rows", len(rows),
	)
	return sb.String()
}

// writeBorder emits one horizontal border line: each segment spans the column
// width plus the two padding spaces around cell content.
func (r *Renderer) writeBorder(sb *strings.Builder, widths []int, left, join, right string) {
	sb.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(join)
		}
		sb.WriteString(strings.Repeat(horizontal, w+2))
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

// writeBottom is writeBorder without the trailing newline; the rendered table
// ends at the last border glyph.
func (r *Renderer) writeBottom(sb *strings.Builder, widths []int) {
	sb.WriteString(bottomLeft)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(bottomJoin)
		}
		sb.WriteString(strings.Repeat(horizontal, w+2))
	}
	sb.WriteString(bottomRight)
}

// writeRow pads each cell out to its column width against the cell's visual
// length, so invisible escape bytes do not push the borders out of line.
func (r *Renderer) writeRow(sb *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		sb.WriteString(vertical)
		sb.WriteByte(' ')
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", widths[i]-r.stripper.VisualLength(cell)+1))
	}
	sb.WriteString(vertical)
	sb.WriteByte('\n')
}

// formatCell stringifies one scalar cell value. Nil values, composite values
// and strings without meaningful content are invalid and abort the render.
func formatCell(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		if !normalize.Validate(domain.NewText(v)) {
			return "", false
		}
		return strings.TrimSpace(v), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}

func sameKeySet(rec domain.Record, want map[string]struct{}) bool {
	if len(rec) != len(want) {
		return false
	}
	for _, f := range rec {
		if _, ok := want[f.Key]; !ok {
			return false
		}
	}
	return true
}

// flatten joins a record's key/value pairs as "k1,v1,k2,v2,...".
func flatten(rec domain.Record) string {
	parts := make([]string, 0, len(rec)*2)
	for _, f := range rec {
		parts = append(parts, f.Key, fmt.Sprint(f.Value))
	}
	return strings.Join(parts, ",")
}

func inconsistentRow(rec domain.Record) string {
	return fmt.Sprintf(
		"Error: Unable to represent data. Row %s is not consistent with the rest of the table.",
		flatten(rec),
	)
}
