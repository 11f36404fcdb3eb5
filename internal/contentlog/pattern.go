package contentlog

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// payload names the token sequence expected after a pattern's marker.
type payload int

const (
	// payloadText: optional space, ':', optional space, free text to end of line.
	payloadText payload = iota
	// payloadProgress: ':' then "download <done>/<total>"; trailing text ignored.
	payloadProgress
	// payloadRate: one or more spaces, a decimal number, spaces, "Mbps".
	payloadRate
	// payloadBoundary: the marker must end on a word boundary.
	payloadBoundary
)

// Pattern declares one content log line shape. Every shape starts with a
// "[date time]" bracket followed by whitespace.
type Pattern struct {
	Kind    Kind
	AppID   bool   // "AppID <n>" follows the timestamp bracket
	Marker  string // case-sensitive phrase after the header
	Payload payload
}

// defaultPatterns lists the recognised shapes in classification order.
func defaultPatterns() []Pattern {
	return []Pattern{
		{Kind: KindAppUpdateChanged, AppID: true, Marker: "App update changed", Payload: payloadText},
		{Kind: KindStateChanged, AppID: true, Marker: "state changed", Payload: payloadText},
		{Kind: KindDownloadProgress, AppID: true, Marker: "update started", Payload: payloadProgress},
		{Kind: KindDownloadRate, Marker: "Current download rate:", Payload: payloadRate},
		{Kind: KindUpdateCanceled, AppID: true, Marker: "update canceled", Payload: payloadText},
		{Kind: KindUpdateFinished, AppID: true, Marker: "finished update", Payload: payloadBoundary},
	}
}

// Match reports the Event for line when it has this pattern's shape and all
// numeric fields parse.
func (p Pattern) Match(text string) (Event, bool) {
	c := cursor{s: text}

	line, ok := c.header()
	if !ok {
		return nil, false
	}

	var appID uint64
	if p.AppID {
		if !c.literal("AppID") || c.space() == 0 {
			return nil, false
		}
		appID, ok = parseID(c.span(isDigit))
		if !ok || c.space() == 0 {
			return nil, false
		}
	}

	if !c.literal(p.Marker) {
		return nil, false
	}

	switch p.Payload {
	case payloadText:
		if !c.colon() {
			return nil, false
		}
		value := strings.TrimSpace(c.rest())
		switch p.Kind {
		case KindAppUpdateChanged:
			return AppUpdateChanged{LogLine: line, AppID: appID, Flags: value}, true
		case KindStateChanged:
			return StateChanged{LogLine: line, AppID: appID, Flags: value}, true
		case KindUpdateCanceled:
			return UpdateCanceled{LogLine: line, AppID: appID, Reason: value}, true
		}
	case payloadProgress:
		if !c.colon() || !c.literal("download") || c.space() == 0 {
			return nil, false
		}
		done, err := strconv.ParseUint(c.span(isDigit), 10, 64)
		if err != nil || !c.literal("/") {
			return nil, false
		}
		total, err := strconv.ParseUint(c.span(isDigit), 10, 64)
		if err != nil {
			return nil, false
		}
		return DownloadProgress{LogLine: line, AppID: appID, Done: done, Total: total}, true
	case payloadRate:
		if c.space() == 0 {
			return nil, false
		}
		mbps, err := strconv.ParseFloat(c.span(isRateRune), 64)
		if err != nil || c.space() == 0 || !c.literal("Mbps") {
			return nil, false
		}
		return DownloadRate{LogLine: line, Mbps: mbps}, true
	case payloadBoundary:
		if !c.wordBoundary() {
			return nil, false
		}
		return UpdateFinished{LogLine: line, AppID: appID}, true
	}
	return nil, false
}

// cursor walks a line left to right. Methods that fail may leave the
// position anywhere; a failed match discards the cursor.
type cursor struct {
	s   string
	pos int
}

// header consumes "[<date> <clock>]" and the whitespace after it.
func (c *cursor) header() (LogLine, bool) {
	if !c.literal("[") {
		return LogLine{}, false
	}
	date := c.span(isDateRune)
	if date == "" || c.space() == 0 {
		return LogLine{}, false
	}
	clock := c.span(isClockRune)
	if clock == "" || !c.literal("]") || c.space() == 0 {
		return LogLine{}, false
	}
	return LogLine{Text: c.s, Time: parseTimestamp(date, clock)}, true
}

func (c *cursor) literal(lit string) bool {
	if !strings.HasPrefix(c.s[c.pos:], lit) {
		return false
	}
	c.pos += len(lit)
	return true
}

// space consumes a whitespace run and returns how many runes it spanned.
func (c *cursor) space() int {
	n := 0
	for c.pos < len(c.s) {
		r, size := utf8.DecodeRuneInString(c.s[c.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		c.pos += size
		n++
	}
	return n
}

func (c *cursor) colon() bool {
	c.space()
	if !c.literal(":") {
		return false
	}
	c.space()
	return true
}

func (c *cursor) span(accept func(rune) bool) string {
	start := c.pos
	for c.pos < len(c.s) {
		r, size := utf8.DecodeRuneInString(c.s[c.pos:])
		if !accept(r) {
			break
		}
		c.pos += size
	}
	return c.s[start:c.pos]
}

func (c *cursor) wordBoundary() bool {
	if c.pos >= len(c.s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(c.s[c.pos:])
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}

func (c *cursor) rest() string {
	out := c.s[c.pos:]
	c.pos = len(c.s)
	return out
}

func parseID(digits string) (uint64, bool) {
	id, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isDateRune(r rune) bool { return isDigit(r) || r == '-' }
func isClockRune(r rune) bool { return isDigit(r) || r == ':' }
func isRateRune(r rune) bool { return isDigit(r) || r == '.' }
