package main

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain Chain) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- Require ----------

func require(chain Chain, cond bool, msg string) {
	if !cond {
		chain.Abort(msg)
	}
}

// abortOnError aborts with the program error text. Nil is a no-op.
func abortOnError(chain Chain, err error) {
	if err != nil {
		chain.Abort(err.Error())
	}
}

// ---------- Parsing Helpers ----------

// nextField cuts the next '|' separated field off s.
func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

// parseTileCoord reads one tile coordinate. Range is checked by Game.Play
// so that out of board values surface as TileOutOfBounds.
func parseTileCoord(chain Chain, s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 8)
	require(chain, err == nil, "invalid tile")
	return uint8(v)
}

func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

func appendU8(dst []byte, v uint8) []byte { return appendU64(dst, uint64(v)) }

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// ---------- Time Helpers ----------

// parseISO8601ToUnix parses "YYYY-MM-DDThh:mm:ss" UTC format into UNIX seconds.
// Assumes valid ASCII digits.
func parseISO8601ToUnix(s string) uint64 {
	year := strToUint16Fast(s[0:4])
	month := strToUint8Fast(s[5:7])
	day := strToUint8Fast(s[8:10])
	hour := strToUint8Fast(s[11:13])
	minute := strToUint8Fast(s[14:16])
	second := strToUint8Fast(s[17:19])

	days := daysSinceUnixEpoch(year, month, day)
	return days*86400 + uint64(hour)*3600 + uint64(minute)*60 + uint64(second)
}

func strToUint16Fast(s string) uint16 {
	var n uint16
	for i := 0; i < len(s); i++ {
		n = n*10 + uint16(s[i]-'0')
	}
	return n
}

func strToUint8Fast(s string) uint8 {
	var n uint8
	for i := 0; i < len(s); i++ {
		n = n*10 + uint8(s[i]-'0')
	}
	return n
}

func isLeapYear(year uint16) bool {
	y := int(year)
	return (y%4 == 0 && y%100 != 0) || (y%400 == 0)
}

func daysSinceUnixEpoch(year uint16, month uint8, day uint8) uint64 {
	y := int(year) - 1970
	days := uint64(y * 365)
	days += uint64((y+1)/4 - (y+69)/100 + (y+369)/400)

	var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i := uint8(1); i < month; i++ {
		days += uint64(monthDays[i-1])
		if i == 2 && isLeapYear(year) {
			days++
		}
	}

	return days + uint64(day-1)
}
