package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/mpkernel/internal/ui"
)

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// Respect NO_COLOR even before app initialization
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()

		fmt.Fprintf(out, "\n%sMulti-precision Calculator%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Word-level arithmetic kernel with self-verification.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] [a] [b]\n\n%sFlags:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}

			fmt.Fprintf(out, "  %s%-28s%s %s", t.Primary, flagSig, t.Reset, usage)

			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\n%sEnvironment:%s\n  Every flag can also be set as %sNAME (e.g. %sKARATSUBA_THRESHOLD=48).\n\n",
			t.Warning, t.Reset, EnvPrefix, EnvPrefix)
	}
}
