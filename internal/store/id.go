package store

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID produces a short identifier: the current unix-millis timestamp
// in base 36 followed by a 5 character random base-36 suffix. Not globally
// unique, which is acceptable for a single-tenant store; a shared backend
// would need real UUIDs instead.
func GenerateID() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	for i := 0; i < 5; i++ {
		b.WriteByte(base36Chars[rand.Intn(len(base36Chars))])
	}
	return b.String()
}
