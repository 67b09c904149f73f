package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/carteira/api"
	"github.com/etnz/carteira/session"
)

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticate against the backend" }
func (*loginCmd) Usage() string {
	return `mc login [<token-or-redirect-url>]

  Prints the Google OAuth login URL. Open it in a browser, complete the
  login, then paste back either the redirect URL or the bare token. The
  token is stored locally and sent as a Bearer header from then on.

Usage Examples:
$ mc login
$ mc login 'http://localhost:5173/?token=eyJhbGci...'
`
}
func (*loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := sessionStore()
	if err != nil {
		return reportErr(err)
	}

	raw := f.Arg(0)
	if raw == "" {
		client := api.New(baseURL(), store, api.WithLogger(logger()))
		fmt.Println("Abra no navegador e faça login com sua conta Google:")
		fmt.Println()
		fmt.Println("  " + client.LoginURL())
		fmt.Println()
		fmt.Print("Cole aqui a URL de redirecionamento (ou o token): ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		raw = line
	}

	token, err := session.ExtractToken(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := store.Save(token); err != nil {
		return reportErr(err)
	}
	fmt.Println("Login concluído. Sessão salva.")
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "discard the stored session" }
func (*logoutCmd) Usage() string {
	return `mc logout

  Removes the stored session token. The backend session itself expires on
  its own.
`
}
func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := sessionStore()
	if err != nil {
		return reportErr(err)
	}
	if err := store.Clear(); err != nil {
		return reportErr(err)
	}
	fmt.Println("Sessão encerrada.")
	return subcommands.ExitSuccess
}
