package placeholder

import (
	"fmt"
	"strconv"
	"strings"
)

// Count returns the number of positional parameters a template needs: the highest
// index referenced by a closed "{N...}" marker plus one, or zero when there is none.
// Every "{{" pair is skipped before a marker is recognized, so "{{0}}" is literal text.
// A marker counts only when Format would substitute it.
func Count(template string) int {
	highest := -1

	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			continue
		}

		if i+1 < len(template) && template[i+1] == '{' {
			i++
			continue
		}

		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			continue
		}

		index, ok := markerIndex(template[i+1 : i+end])
		if !ok {
			continue
		}

		if index > highest {
			highest = index
		}

		i += end
	}

	return highest + 1
}

// Format substitutes args into template positionally.
//
// Supported markers:
//
//	{N}        fmt.Sprint(args[N])
//	{N:verb}   fmt.Sprintf("%verb", args[N]), e.g. {1:.2f} or {0:q}
//	{N,width}  right-aligned to width; a negative width left-aligns
//	{{ and }}  literal braces
//
// Markers that are malformed or reference a missing argument are copied verbatim.
func Format(template string, args []any) string {
	var sb strings.Builder

	sb.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]

		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				sb.WriteByte('{')
				i++

				continue
			}

			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				sb.WriteByte(c)
				continue
			}

			rendered, ok := render(template[i+1:i+end], args)
			if !ok {
				sb.WriteByte(c)
				continue
			}

			sb.WriteString(rendered)

			i += end
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}

			sb.WriteByte('}')
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

func render(marker string, args []any) (string, bool) {
	index, ok := markerIndex(marker)
	if !ok || index >= len(args) {
		return "", false
	}

	body, verb, hasVerb := strings.Cut(marker, ":")
	_, widthText, hasWidth := strings.Cut(body, ",")

	value := fmt.Sprint(args[index])
	if hasVerb && verb != "" {
		value = fmt.Sprintf("%"+verb, args[index])
	}

	if !hasWidth {
		return value, true
	}

	width, err := strconv.Atoi(strings.TrimSpace(widthText))
	if err != nil {
		return "", false
	}

	if width < 0 {
		return fmt.Sprintf("%-*s", -width, value), true
	}

	return fmt.Sprintf("%*s", width, value), true
}

// markerIndex parses the argument index of a marker body such as "0", "1:.2f" or "2,-5".
func markerIndex(marker string) (int, bool) {
	body, _, _ := strings.Cut(marker, ":")
	indexText, _, _ := strings.Cut(body, ",")

	indexText = strings.TrimSpace(indexText)
	if indexText == "" || !allDigits(indexText) {
		return 0, false
	}

	index, err := strconv.Atoi(indexText)
	if err != nil {
		return 0, false
	}

	return index, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
