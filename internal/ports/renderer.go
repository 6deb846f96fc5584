package ports

import "github.com/baditaflorin/go_string_toolkit/internal/core/domain"

// TableRenderer lays records out as a fixed-width box-drawing table.
// Inconsistent input is reported through the returned string, never a fault.
type TableRenderer interface {
	Render(records []domain.Record) string
}
