package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// addVarFlag registers a repeatable --var/-v name=value flag.
func addVarFlag(fs *pflag.FlagSet, target *[]string) {
	fs.StringArrayVarP(target, "var", "v", nil, "template variable as name=value (repeatable)")
}

// parseVars turns name=value pairs into a map. Only the first "=" splits,
// so values may contain "=". A later pair overrides an earlier one.
func parseVars(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --var %q: expected name=value", pair)
		}
		values[name] = value
	}
	return values, nil
}

type providerFlags struct {
	provider string
	model    string
	offline  bool
}

func addProviderFlags(fs *pflag.FlagSet, f *providerFlags) {
	fs.StringVar(&f.provider, "provider", "", "LLM provider (openai, anthropic, ollama); default from config")
	fs.StringVar(&f.model, "model", "", "model for the chosen provider")
	fs.BoolVar(&f.offline, "offline", false, "skip providers and synthesize the email locally")
}
