package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// addFilterFlags defines the flags shared by filter, validate, and
// watch. Binding into viper happens per run via bindFilterFlags, since
// the same config key can only be bound to one flag set at a time.
func addFilterFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("input", "i", "", "word-list source file (default 6of12.txt)")
	flags.StringP("output", "o", "", "destination file (default words_3to7.txt)")
	flags.Int("min-length", 0, "minimum word length (default 3)")
	flags.Int("max-length", 0, "maximum word length (default 7)")
	flags.String("alphabet", "", "alphabetic predicate scope (unicode, ascii)")
}

// bindFilterFlags binds the executing command's flags into viper so
// flag values win over environment variables and the config file.
func bindFilterFlags(flags *pflag.FlagSet) {
	bindings := map[string]string{
		"input":            "input",
		"output":           "output",
		"rules.min_length": "min-length",
		"rules.max_length": "max-length",
		"rules.alphabet":   "alphabet",
	}

	for key, name := range bindings {
		if flag := flags.Lookup(name); flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}
