package normalize

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns an opaque resource ID: the current Unix time in
// milliseconds in base 36, followed by five random base 36 characters.
func NewID() string {
	return newID(time.Now())
}

func newID(now time.Time) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	for range 5 {
		b.WriteByte(base36[rand.IntN(len(base36))])
	}
	return b.String()
}
