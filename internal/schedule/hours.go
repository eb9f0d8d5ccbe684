// Package schedule decides whether ordering is currently open. All
// wall-clock math happens in the vendor's timezone so the answer is the
// same no matter where the process runs; the UI gate and the submission
// gate both call IsOrderingOpen and can never disagree.
package schedule

import (
	"strconv"
	"strings"
	"time"
)

const vendorZoneName = "America/Sao_Paulo"

var vendorZone = loadVendorZone()

func loadVendorZone() *time.Location {
	loc, err := time.LoadLocation(vendorZoneName)
	if err != nil {
		// Only possible on hosts with no zone database; cmd/server
		// embeds tzdata so this stays unreachable there.
		panic("schedule: cannot load " + vendorZoneName + ": " + err.Error())
	}
	return loc
}

// VendorTime converts t to the vendor's local time.
func VendorTime(t time.Time) time.Time {
	return t.In(vendorZone)
}

// IsOrderingOpen reports whether now falls inside [open, close) with both
// bounds given as "HH:MM" vendor-local wall-clock times. Open is
// inclusive, close exclusive. Malformed bounds are a caller contract
// violation; config is validated before it is stored.
func IsOrderingOpen(openTime, closeTime string, now time.Time) bool {
	local := now.In(vendorZone)
	nowMinutes := local.Hour()*60 + local.Minute()
	return minutesOf(openTime) <= nowMinutes && nowMinutes < minutesOf(closeTime)
}

// ValidHours reports whether s parses as "HH:MM" within a day.
func ValidHours(s string) bool {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return false
	}
	return true
}

func minutesOf(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) == 2 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}
