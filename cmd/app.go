// Package cmd implements the CLI application of the Minha Carteira client.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/etnz/carteira/api"
	"github.com/etnz/carteira/session"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	// a .env next to the binary can hold MC_API_URL etc.; absence is fine.
	godotenv.Load()

	c.Register(&summaryCmd{}, "reports")
	c.Register(&assetsCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&evolutionCmd{}, "reports")
	c.Register(&investedCmd{}, "reports")
	c.Register(&dashCmd{}, "reports")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&fixedIncomeCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&tagCashCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&refreshCmd{}, "market data")
	c.Register(&searchCmd{}, "market data")
	c.Register(&priceCmd{}, "market data")

	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&assistCmd{}, "misc")
	c.Register(&topicCmd{}, "misc")
}

// as a CLI application with a very short lifecycle, globals are fine here.

var apiURL = flag.String("api-url", "", "backend base URL (default $MC_API_URL or "+api.DefaultBaseURL+")")
var tokenFile = flag.String("token-file", "", "session token file (default $MC_TOKEN_FILE or the user config dir)")
var verbose = flag.Bool("v", false, "log every HTTP request")

// baseURL resolves the backend address from flag, env, then default.
func baseURL() string {
	if *apiURL != "" {
		return *apiURL
	}
	if env := os.Getenv("MC_API_URL"); env != "" {
		return env
	}
	return api.DefaultBaseURL
}

// sessionStore resolves the token file the same way.
func sessionStore() (*session.Store, error) {
	path := *tokenFile
	if path == "" {
		path = os.Getenv("MC_TOKEN_FILE")
	}
	if path == "" {
		var err error
		path, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return session.NewStore(path), nil
}

// logger returns the CLI logger: human-readable on stderr, debug level only
// with -v.
func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// newClient builds the backend client shared by all commands.
func newClient() (*api.Client, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, err
	}
	return api.New(baseURL(), store, api.WithLogger(logger())), nil
}

// reportErr prints an error the way each command would, with the special case
// for an expired session: the token is already cleared, the user just needs
// to log in again. Exactly one notice per invocation.
func reportErr(err error) subcommands.ExitStatus {
	if errors.Is(err, api.ErrUnauthorized) {
		fmt.Fprintln(os.Stderr, "Sua sessão expirou ou você não está logado. Rode 'mc login' para entrar novamente.")
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
