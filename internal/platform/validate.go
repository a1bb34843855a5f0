package platform

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Validate applies a platform's rules to a draft. It is a pure function:
// the same draft and rules always yield the same result, and issues are
// returned as data, never as errors.
func Validate(d *Draft, r *Rules) ValidationResult {
	var errs, warns, suggestions []string

	if r.TitleRequired && strings.TrimSpace(d.Title) == "" {
		errs = append(errs, "title is required")
	}
	if r.ForbidEmojiTitle && containsEmoji(d.Title) {
		errs = append(errs, "emoji not allowed in title")
	}

	// Length constraints, in stable field order.
	fields := make([]string, 0, len(r.LengthConstraints))
	for f := range r.LengthConstraints {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		lr := r.LengthConstraints[field]
		for _, m := range measure(d, field) {
			var issue string
			switch {
			case lr.Max > 0 && m.count > lr.Max:
				issue = fmt.Sprintf("%s too long: %d/%d", m.label, m.count, lr.Max)
			case lr.Min > 0 && m.count < lr.Min:
				issue = fmt.Sprintf("%s too short: %d/%d", m.label, m.count, lr.Min)
			default:
				continue
			}
			if lr.Hard {
				errs = append(errs, issue)
			} else {
				warns = append(warns, issue)
			}
		}
	}

	// Forbidden terms: case-insensitive substring match across title,
	// body, and thread. One finding per term.
	titleHay := strings.ToLower(d.Title)
	bodyHay := strings.ToLower(d.Body + "\n" + strings.Join(d.Thread, "\n"))
	haystack := titleHay + "\n" + bodyHay
	for _, term := range r.ForbiddenTerms {
		if strings.Contains(haystack, strings.ToLower(term)) {
			errs = append(errs, fmt.Sprintf("contains forbidden term %q", term))
		}
	}
	for _, term := range r.DiscouragedTerms {
		if strings.Contains(haystack, strings.ToLower(term)) {
			warns = append(warns, fmt.Sprintf("contains discouraged phrase %q", term))
		}
	}

	// Missing structural sections are warnings: the content is still
	// postable after manual correction. Title sections are matched
	// against the title alone, so a body mention can't satisfy them.
	for _, section := range r.StructuralSections {
		hay := bodyHay
		if section.TitleOnly {
			hay = titleHay
		}
		if !sectionPresent(section, hay) {
			warns = append(warns, fmt.Sprintf("missing %s section", section.Name))
		}
	}

	if strings.HasSuffix(strings.TrimSpace(d.Title), "!") {
		suggestions = append(suggestions, "drop the exclamation mark from the title")
	}
	if r.Threaded && len(d.Thread) > 0 && !strings.Contains(strings.Join(d.Thread, " "), "?") {
		suggestions = append(suggestions, "add a question to one chunk to invite replies")
	}

	return ValidationResult{
		IsValid:     len(errs) == 0,
		Errors:      errs,
		Warnings:    warns,
		Suggestions: suggestions,
	}
}

type measurement struct {
	label string
	count int
}

// measure resolves a constraint field name to one or more counted values
// on the draft. Text fields count runes, list fields count items.
func measure(d *Draft, field string) []measurement {
	switch field {
	case "title":
		return []measurement{{"title", utf8.RuneCountInString(d.Title)}}
	case "body":
		return []measurement{{"body", utf8.RuneCountInString(d.Body)}}
	case "tags":
		return []measurement{{"tags", len(d.Tags)}}
	case "chunk":
		ms := make([]measurement, len(d.Thread))
		for i, chunk := range d.Thread {
			ms[i] = measurement{fmt.Sprintf("thread chunk %d", i+1), utf8.RuneCountInString(chunk)}
		}
		return ms
	default:
		return nil
	}
}

func sectionPresent(s Section, haystack string) bool {
	for _, marker := range s.Markers {
		if strings.Contains(haystack, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

func containsEmoji(s string) bool {
	for _, r := range s {
		if (r >= 0x1F300 && r <= 0x1FAFF) || (r >= 0x2600 && r <= 0x27BF) {
			return true
		}
	}
	return false
}
