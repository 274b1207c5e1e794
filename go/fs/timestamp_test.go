package fs

import (
	"testing"
	"time"

	"github.com/allmad/lanyfs/go/bio"
	"github.com/chzyer/test"
)

func TestTimestamp(t *testing.T) {
	defer test.New(t)

	zone := time.FixedZone("UTC+2", 2*3600)
	ts := NewTimestamp(time.Date(2012, 12, 24, 18, 30, 15, 999, zone))
	// calendar fields are UTC, the offset keeps the writer's zone
	test.Equal(ts.Hour, uint8(16))
	test.Equal(ts.Offset, int16(120))

	buf := make([]byte, TimestampSize)
	ts.WriteDisk(bio.NewWriter(buf))

	var got Timestamp
	test.Nil(got.ReadDisk(bio.NewReader(buf)))
	test.Equal(got, ts)
	test.Equal(got.String(), "2012-12-24T16:30:15.999+02:00")
}

func TestTimestampUndefined(t *testing.T) {
	defer test.New(t)

	var ts Timestamp
	test.True(ts.IsZero())
	test.Equal(ts.String(), "undefined")

	// an actual midnight is not "undefined"
	midnight := NewTimestamp(time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC))
	test.True(!midnight.IsZero())

	buf := make([]byte, TimestampSize)
	ts.WriteDisk(bio.NewWriter(buf))
	var got Timestamp
	test.Nil(got.ReadDisk(bio.NewReader(buf)))
	test.True(got.IsZero())
}
