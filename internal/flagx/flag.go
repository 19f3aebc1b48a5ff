// Package flagx lets several components parse their own flags out of a
// shared os.Args without tripping over each other's definitions.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// flagName returns the bare name of arg ("-a", "--a" and "-a=x" all give
// "a") and whether arg looks like a flag at all.
func flagName(arg string) (name string, hasValue bool, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false, false
	}
	name = strings.TrimLeft(arg, "-")
	if name == "" {
		return "", false, false
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true, true
	}
	return name, false, true
}

// FilterArgs keeps only the flags in names (given without dashes) together
// with their values. Both "-name value" and "-name=value" forms are kept,
// with one or two leading dashes, in their original order.
func FilterArgs(args []string, names ...string) []string {
	matched, _ := partition(args, names)
	return matched
}

// StripArgs is the complement of FilterArgs: it drops the named flags and
// their values and returns everything else, positionals included.
func StripArgs(args []string, names ...string) []string {
	_, rest := partition(args, names)
	return rest
}

func partition(args []string, names []string) (matched, rest []string) {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[strings.TrimLeft(n, "-")] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		name, hasValue, ok := flagName(args[i])
		if !ok {
			rest = append(rest, args[i])
			continue
		}
		if _, keep := allowed[name]; !keep {
			rest = append(rest, args[i])
			continue
		}
		matched = append(matched, args[i])
		if hasValue {
			continue
		}
		// value given as the next argument
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			matched = append(matched, args[i+1])
			i++
		}
	}

	return matched, rest
}

// JSONConfigPath returns the value of -c / -config from os.Args, or ""
// when neither is present.
func JSONConfigPath() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], "c", "config"))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
