// performance tracing
package ptrace

import (
	"fmt"
	"strings"
	"time"
)

// Size is a byte count that prints itself in human units.
type Size int64

func (s *Size) Add(n int64) {
	*s += Size(n)
}

func (s *Size) AddInt(n int) {
	s.Add(int64(n))
}

func (s Size) String() string {
	return Unit(int64(s))
}

// Rate formats the throughput of moving s bytes in d.
func (s Size) Rate(d time.Duration) string {
	secs := d.Seconds()
	if secs <= 0 {
		secs = 1e-9
	}
	return Unit(int64(float64(s)/secs)) + "/s"
}

func Unit(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	f := float64(n)
	idx := 0
	for f > 1024 && idx+1 < len(units) {
		f /= 1024
		idx++
	}
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimSuffix(s, ".00")
	return s + units[idx]
}
