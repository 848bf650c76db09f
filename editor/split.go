package editor

import (
	"fmt"
	"strings"
)

// SplitCommand splits a user-entered editor command into argv parts,
// honoring single quotes, double quotes, and backslash escapes. Inside
// double quotes only \" and \\ act as escapes; everything in single quotes
// is literal.
func SplitCommand(input string) ([]string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false
	quoted := false // the current argument had quotes, so even "" counts

	flush := func() {
		if current.Len() == 0 && !quoted {
			return
		}
		args = append(args, current.String())
		current.Reset()
		quoted = false
	}

	for i := 0; i < len(input); {
		ch := input[i]
		if inSingle {
			if ch == '\'' {
				inSingle = false
				i++
				continue
			}
			current.WriteByte(ch)
			i++
			continue
		}
		if inDouble {
			switch ch {
			case '"':
				inDouble = false
				i++
				continue
			case '\\':
				if i+1 >= len(input) {
					return nil, fmt.Errorf("unterminated escape")
				}
				next := input[i+1]
				if next == '"' || next == '\\' {
					current.WriteByte(next)
					i += 2
					continue
				}
				current.WriteByte('\\')
				i++
				continue
			default:
				current.WriteByte(ch)
				i++
				continue
			}
		}

		switch ch {
		case ' ', '\t', '\n', '\r':
			flush()
			i++
		case '\'':
			inSingle = true
			quoted = true
			i++
		case '"':
			inDouble = true
			quoted = true
			i++
		case '\\':
			if i+1 >= len(input) {
				return nil, fmt.Errorf("unterminated escape")
			}
			next := input[i+1]
			if next == ' ' || next == '\t' || next == '\n' || next == '\r' || next == '\\' || next == '"' || next == '\'' {
				current.WriteByte(next)
				i += 2
				continue
			}
			current.WriteByte('\\')
			i++
		default:
			current.WriteByte(ch)
			i++
		}
	}

	if inSingle {
		return nil, fmt.Errorf("unterminated single quote")
	}
	if inDouble {
		return nil, fmt.Errorf("unterminated double quote")
	}
	flush()
	return args, nil
}
