package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/networth"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion. Flag values
// with a closed set of choices are predicted, other flags take anything.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(Commands)),
		Flags: flagPredictors(flag.CommandLine, nil),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs, choices(c.Name()))}
		switch c.Name() {
		case "import":
			sub.Args = predict.Files("*")
		case "topic":
			sub.Args = predict.Set(topics())
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func flagPredictors(fs *flag.FlagSet, choices map[string][]string) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case choices[f.Name] != nil:
			flags[f.Name] = predict.Set(choices[f.Name])
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// choices returns the closed sets of values of the flags of a command.
func choices(command string) map[string][]string {
	switch {
	case command == "export":
		return map[string][]string{
			"kind":   {string(networth.KindAssets), string(networth.KindDebts), string(networth.KindAll)},
			"format": {string(networth.FormatJSON), string(networth.FormatCSV)},
		}
	case command == "import":
		return map[string][]string{"kind": {string(networth.KindAssets), string(networth.KindDebts)}}
	case strings.HasSuffix(command, "-asset"):
		return map[string][]string{
			"type":   strs(networth.AssetTypes),
			"source": strs(networth.AssetSources),
		}
	case strings.HasSuffix(command, "-debt"):
		return map[string][]string{"type": strs(networth.DebtTypes)}
	}
	return nil
}

func strs[T ~string](values []T) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = string(v)
	}
	return res
}
