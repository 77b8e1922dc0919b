package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	// Names may contain spaces; a pipe or semicolon before the first colon
	// means the colon belongs to a field, not the name.
	reStructured = regexp.MustCompile(`^@([^:：|;\n]+?)\s*[:：]\s*(.+)$`)
	reLoose      = regexp.MustCompile(`^@([^\s:：]+)(?:\s+(.*))?$`)

	reDeadlineField = regexp.MustCompile(`(?i)\|\s*(?:กำหนดส่ง|due|deadline)\s*[:：]\s*([^|]*)`)
	reNoteField     = regexp.MustCompile(`(?i)\|\s*(?:note|โน้ต|หมายเหตุ)\s*[:：]\s*([^|]*)`)
	reTrailingPipes = regexp.MustCompile(`[\s|]*\|+\s*$`)
	reSpaces        = regexp.MustCompile(`\s+`)

	// Calm words are matched first because "รีบ" is part of "ไม่รีบ".
	reCalm   = regexp.MustCompile(`(?i)ไม่รีบนะ|ไม่รีบ|\bnormal\b|ค่อยทำ`)
	reUrgent = regexp.MustCompile(`(?i)\[urgent\]|\burgent\b|ด่วนที่สุด|ด่วนสุด|ด่วน|รีบ`)

	reLooseDay     = regexp.MustCompile(`(?i)(วันนี้|พรุ่งนี้|today|tomorrow)(?:\s*(\d{1,2})(?::(\d{2}))?)?`)
	reLooseWeekday = regexp.MustCompile(`(?:วัน)?(อาทิตย์|จันทร์|อังคาร|พุธ|พฤหัสบดี|พฤหัส|ศุกร์|เสาร์)(นี้|หน้า)(?:\s*(\d{1,2})(?::(\d{2}))?)?`)
	reLooseAfter   = regexp.MustCompile(`(?:ก่อน)?\s*บ่าย\s*(\d{1,2})(?::(\d{2}))?`)
	reLooseDate    = regexp.MustCompile(`(?:^|\s)(\d{1,2}/\d{1,2})(?:\s+(\d{1,2}):(\d{2}))?(?:\s|$)`)
)

var (
	structuredFillers = []string{"นะ", "ด้วย"}
	looseFillers      = []string{"ก่อน", "ภายใน", "นะ", "ด้วย", "ของาน"}
)

// structuredAssign handles "@name: detail | กำหนดส่ง: ... | note: ...".
func (p *Parser) structuredAssign(text string, now time.Time) (Intent, bool) {
	m := reStructured.FindStringSubmatch(text)
	if m == nil || !structuredName(m[1], m[2]) {
		return nil, false
	}
	name := strings.TrimSpace(m[1])
	body := strings.ReplaceAll(m[2], ";", "|")

	var phrase, note string
	body = cutField(reDeadlineField, body, &phrase)
	body = cutField(reNoteField, body, &note)

	detail, note := tagUrgency(body, note)
	detail = reTrailingPipes.ReplaceAllString(detail, "")
	detail = dropFillers(detail, structuredFillers)

	in := Assign{
		AssigneeRef:    name,
		Detail:         orPlaceholder(detail),
		DeadlinePhrase: phrase,
		Note:           note,
	}
	if phrase != "" {
		in.Deadline = p.dates.ResolveString(phrase, now)
	}
	return in, true
}

// structuredName reports whether the colon after name introduces the detail.
// A colon inside a clock ("09:00") or a URL ("https://") does not.
func structuredName(name, body string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if strings.HasPrefix(body, "//") {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(name)
	first, _ := utf8.DecodeRuneInString(body)
	return !(unicode.IsDigit(last) && unicode.IsDigit(first))
}

// looseAssign handles "@name free text" with one date phrase anywhere in it.
func (p *Parser) looseAssign(text string, now time.Time) (Intent, bool) {
	m := reLoose.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	body, note := tagUrgency(m[2], "")
	body, phrase := cutDatePhrase(body)
	body = dropFillers(body, looseFillers)

	in := Assign{
		AssigneeRef:    m[1],
		Detail:         orPlaceholder(body),
		DeadlinePhrase: phrase,
		Note:           note,
		Loose:          true,
	}
	if phrase != "" {
		in.Deadline = p.dates.ResolveString(phrase, now)
	}
	return in, true
}

// cutDatePhrase removes the first date sub-phrase from body and returns it
// in a form the deadline resolver understands.
func cutDatePhrase(body string) (string, string) {
	if m := reLooseDay.FindStringSubmatchIndex(body); m != nil {
		word := strings.ToLower(sub(body, m, 1))
		return cutAt(body, m), withClock(word, sub(body, m, 2), sub(body, m, 3))
	}
	if m := reLooseWeekday.FindStringSubmatchIndex(body); m != nil {
		day := sub(body, m, 1) + sub(body, m, 2)
		return cutAt(body, m), withClock(day, sub(body, m, 3), sub(body, m, 4))
	}
	if m := reLooseAfter.FindStringSubmatchIndex(body); m != nil {
		phrase := "บ่าย " + sub(body, m, 1)
		if mm := sub(body, m, 2); mm != "" {
			phrase += ":" + mm
		}
		return cutAt(body, m), phrase
	}
	if m := reLooseDate.FindStringSubmatchIndex(body); m != nil {
		return cutAt(body, m), withClock(sub(body, m, 1), sub(body, m, 2), sub(body, m, 3))
	}
	return body, ""
}

// sub returns capture group n of a FindStringSubmatchIndex result.
func sub(s string, idx []int, n int) string {
	if 2*n+1 >= len(idx) || idx[2*n] < 0 {
		return ""
	}
	return s[idx[2*n]:idx[2*n+1]]
}

func cutAt(s string, idx []int) string {
	return collapse(s[:idx[0]] + " " + s[idx[1]:])
}

// withClock appends a zero-padded HH:MM when an hour was given.
func withClock(base, hh, mm string) string {
	if hh == "" {
		return base
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return fmt.Sprintf("%s %02d:%02d", base, h, m)
}

func cutField(re *regexp.Regexp, body string, dst *string) string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return body
	}
	*dst = strings.TrimSpace(m[1])
	return strings.Replace(body, m[0], " ", 1)
}

// tagUrgency strips urgency and calm words from detail and note. Urgent wins:
// the note gets a leading [URGENT] tag; otherwise a calm word appends
// "ไม่รีบ" to the note.
func tagUrgency(detail, note string) (string, string) {
	detail, calmDetail := stripWords(reCalm, detail)
	note, calmNote := stripWords(reCalm, note)

	detail, urgentDetail := stripWords(reUrgent, detail)
	note, urgentNote := stripWords(reUrgent, note)
	detail, note = collapse(detail), collapse(note)

	urgent := urgentDetail || urgentNote
	calm := calmDetail || calmNote

	switch {
	case urgent:
		note = strings.TrimSpace(UrgentTag + " " + note)
	case calm:
		note = strings.TrimSpace(note + " " + CalmAnnotation)
	}
	return detail, note
}

// stripWords replaces each match of re in s with a space. A match followed by
// a Thai vowel or tone mark is the start of a longer word ("รีบูต") and is
// left alone.
func stripWords(re *regexp.Regexp, s string) (string, bool) {
	var b strings.Builder
	var found bool
	last := 0
	for _, loc := range re.FindAllStringIndex(s, -1) {
		if next, _ := utf8.DecodeRuneInString(s[loc[1]:]); isThaiMark(next) {
			continue
		}
		found = true
		b.WriteString(s[last:loc[0]])
		b.WriteByte(' ')
		last = loc[1]
	}
	if !found {
		return s, false
	}
	b.WriteString(s[last:])
	return b.String(), true
}

// isThaiMark reports whether r is a Thai combining vowel or tone mark.
func isThaiMark(r rune) bool {
	return r == '\u0E31' || (r >= '\u0E34' && r <= '\u0E3A') || (r >= '\u0E47' && r <= '\u0E4E')
}

// dropFillers removes whole filler tokens.
func dropFillers(s string, fillers []string) string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		if !contains(fillers, f) {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func collapse(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return PlaceholderText
	}
	return s
}
