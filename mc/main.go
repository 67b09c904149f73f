// Command mc is the terminal client of the Minha Carteira dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/carteira/cmd"
)

func main() {
	// Shell completion. Complete() exits by itself when invoked by the
	// shell's completion hook.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	files := predict.Files("*")
	sub := func() *complete.Command { return &complete.Command{} }

	complete.Complete("mc", &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":      sub(),
			"assets":       sub(),
			"allocation":   sub(),
			"evolution":    sub(),
			"invested":     sub(),
			"dash":         sub(),
			"buy":          sub(),
			"sell":         sub(),
			"fixed-income": sub(),
			"delete":       sub(),
			"tag-cash":     sub(),
			"import":       {Args: files},
			"export":       sub(),
			"refresh":      sub(),
			"search":       sub(),
			"price":        sub(),
			"login":        sub(),
			"logout":       sub(),
			"assist":       sub(),
			"topic":        sub(),
		},
		Flags: map[string]complete.Predictor{
			"api-url":    predict.Nothing,
			"token-file": files,
			"v":          predict.Nothing,
		},
	})
}
