// Package flagx lets several loaders share os.Args: each one keeps only the
// flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments of args that belong to allowedFlags,
// in their original order. Both "-f value" and "-f=value" forms are
// recognised; a value is only consumed when it does not start with '-'.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigFile returns the JSON config path given with -c or -config, or "".
func ConfigFile(args []string) string {
	return lookup(args, "c", "config")
}

// EnvFile returns the dotenv path given with -e or -env, or "".
func EnvFile(args []string) string {
	return lookup(args, "e", "env")
}

// lookup parses a single string flag known under a short and a long name.
// The last occurrence wins.
func lookup(args []string, short, long string) string {
	var v string

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&v, long, "", "")
	fs.StringVar(&v, short, "", "")
	_ = fs.Parse(FilterArgs(args, []string{"-" + short, "-" + long, "--" + long}))

	return v
}
