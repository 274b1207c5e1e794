package fs

import (
	"fmt"
	"time"

	"github.com/allmad/lanyfs/go/bio"
)

// Timestamp is the fixed 16-byte on-disk time record. Calendar fields
// are UTC, Offset keeps the writer's zone in minutes. The zero value
// means "undefined" and is distinct from any real point in time.
type Timestamp struct {
	Year   uint16
	Mon    uint8
	Day    uint8
	Hour   uint8
	Min    uint8
	Sec    uint8
	Nsec   uint32
	Offset int16
}

func Now() Timestamp {
	return NewTimestamp(time.Now())
}

func NewTimestamp(t time.Time) Timestamp {
	u := t.UTC()
	_, zone := t.Zone()
	return Timestamp{
		Year:   uint16(u.Year()),
		Mon:    uint8(u.Month()),
		Day:    uint8(u.Day()),
		Hour:   uint8(u.Hour()),
		Min:    uint8(u.Minute()),
		Sec:    uint8(u.Second()),
		Nsec:   uint32(u.Nanosecond()),
		Offset: int16(zone / 60),
	}
}

func (ts Timestamp) IsZero() bool {
	return ts == Timestamp{}
}

func (ts Timestamp) Time() time.Time {
	return time.Date(int(ts.Year), time.Month(ts.Mon), int(ts.Day),
		int(ts.Hour), int(ts.Min), int(ts.Sec), int(ts.Nsec), time.UTC)
}

func (Timestamp) Size() int { return TimestampSize }

func (ts *Timestamp) ReadDisk(r *bio.Reader) error {
	ts.Year = r.Uint16()
	ts.Mon = r.Uint8()
	ts.Day = r.Uint8()
	ts.Hour = r.Uint8()
	ts.Min = r.Uint8()
	ts.Sec = r.Uint8()
	r.Skip(1)
	ts.Nsec = r.Uint32()
	ts.Offset = r.Int16()
	r.Skip(2)
	return nil
}

func (ts Timestamp) WriteDisk(w *bio.Writer) {
	w.Uint16(ts.Year)
	w.Uint8(ts.Mon)
	w.Uint8(ts.Day)
	w.Uint8(ts.Hour)
	w.Uint8(ts.Min)
	w.Uint8(ts.Sec)
	w.Skip(1)
	w.Uint32(ts.Nsec)
	w.Int16(ts.Offset)
	w.Skip(2)
}

func (ts Timestamp) String() string {
	if ts.IsZero() {
		return "undefined"
	}
	off := int(ts.Offset)
	min := off % 60
	if min < 0 {
		min = -min
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%d%+03d:%02d",
		ts.Year, ts.Mon, ts.Day, ts.Hour, ts.Min, ts.Sec, ts.Nsec,
		off/60, min)
}
