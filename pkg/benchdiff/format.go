package benchdiff

import (
	"fmt"
	"strings"
)

// Placeholder stands in for any value or delta that could not be
// computed.
const Placeholder = "-"

// FormatValue renders a base value in the configured display unit:
// time as "%.3f <unit>", memory as "%.3f <UNIT>", throughput as
// "%.3f ops/s", GC counts as a bare "%.3f". Absent values render as the
// placeholder.
func FormatValue(base Number, kind Kind, timeUnit, memUnit string) string {
	if !base.Valid {
		return Placeholder
	}
	switch kind {
	case KindTime:
		return fmt.Sprintf("%.3f %s", FromBaseTime(base.Value, timeUnit), timeUnit)
	case KindMemory:
		return fmt.Sprintf("%.3f %s", FromBaseMemory(base.Value, memUnit), strings.ToUpper(memUnit))
	case KindThroughput:
		return fmt.Sprintf("%.3f ops/s", base.Value)
	default:
		return fmt.Sprintf("%.3f", base.Value)
	}
}

// FormatDelta renders a percent delta as "+12.34%" / "-5.00%", or the
// placeholder when absent.
func FormatDelta(delta Number) string {
	if !delta.Valid {
		return Placeholder
	}
	return fmt.Sprintf("%+.2f%%", delta.Value)
}

// RecordDelta renders a delta for the flat record file: four decimals,
// empty string when absent.
func RecordDelta(delta Number) string {
	if !delta.Valid {
		return ""
	}
	return fmt.Sprintf("%.4f", delta.Value)
}

// DeltaSign reports pos, neg or zero for the record file. An absent
// delta counts as zero there, while its delta_pct field stays empty.
func DeltaSign(delta Number) string {
	switch {
	case delta.Valid && delta.Value > 0:
		return "pos"
	case delta.Valid && delta.Value < 0:
		return "neg"
	default:
		return "zero"
	}
}

// Arrow returns the movement glyph for a delta: ↓ for a decrease, ↑ for
// an increase, → for flat or absent. Whether the movement is favorable
// is the Kind's call, not the arrow's.
func Arrow(delta Number) string {
	if !delta.Valid || delta.Value == 0 {
		return "→"
	}
	if delta.Value < 0 {
		return "↓"
	}
	return "↑"
}
