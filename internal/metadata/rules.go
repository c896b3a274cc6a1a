package metadata

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

func (r *Resolver) defaultName(bt BundleType, args Args) any {
	if path, ok := stringArg(args, ArgPath); ok {
		return baseName(r.normalize(path))
	}
	if bt.Name == MakeBundle.Name {
		targets, ok := stringsArg(args, ArgTarget)
		if ok && len(targets) == 1 && !strings.Contains(targets[0], ":") {
			return baseName(targets[0])
		}
	}
	return AnonymousName(bt)
}

func (r *Resolver) defaultDescription(bt BundleType, args Args) any {
	if bt.Uploaded {
		if path, ok := stringArg(args, ArgPath); ok {
			return "Upload " + r.normalize(path)
		}
	}
	switch bt.Name {
	case MakeBundle.Name:
		if targets, ok := stringsArg(args, ArgTarget); ok {
			return "Package " + strings.Join(targets, ", ")
		}
	case RunBundle.Name:
		program, okProgram := stringArg(args, ArgProgramTarget)
		input, okInput := stringArg(args, ArgInputTarget)
		command, okCommand := stringArg(args, ArgCommand)
		if okProgram && okInput && okCommand {
			return fmt.Sprintf("Run %s on %s: %s", program, input, quoteCommand(command))
		}
	}
	return ""
}

func (r *Resolver) defaultArchitectures(BundleType, Args) any {
	if machine := r.machine(); machine != "" {
		return []string{machine}
	}
	return []string{}
}

// baseName returns the final path element; a trailing separator yields "".
func baseName(path string) string {
	_, file := filepath.Split(path)
	return file
}

// quoteCommand renders s as a quoted string literal. Single quotes are used
// unless s contains a single quote and no double quote.
func quoteCommand(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, c := range s {
		switch {
		case c == quote || c == '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case !unicode.IsPrint(c):
			switch {
			case c < 0x100:
				fmt.Fprintf(&b, `\x%02x`, c)
			case c < 0x10000:
				fmt.Fprintf(&b, `\u%04x`, c)
			default:
				fmt.Fprintf(&b, `\U%08x`, c)
			}
		default:
			b.WriteRune(c)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
