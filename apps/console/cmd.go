package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/lava/core"
	"github.com/trezcool/lava/core/nav"
	"github.com/trezcool/lava/core/user"
	"github.com/trezcool/lava/ui"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errQuit = errors.New("quit")
)

var pagesByName = map[string]nav.Page{}

func init() {
	for _, p := range nav.AllPages {
		pagesByName[p.String()] = p
	}
}

type commandLine struct {
	app    *ui.App
	logger core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Commands:")
	fmt.Println("  login student|coach EMAIL_OR_USERNAME - log in (password prompted)")
	fmt.Println("  open PAGE [PARAM]                     - navigate to a page")
	fmt.Println("  pages                                 - list available pages")
	fmt.Println("  whoami                                - show the signed-in user")
	fmt.Println("  logout                                - sign out")
	fmt.Println("  quit                                  - exit")
}

func (cli *commandLine) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Printf("%s> ", cli.app.Controller().Page())
		if !sc.Scan() {
			return sc.Err()
		}
		args := strings.Fields(sc.Text())
		if len(args) == 0 {
			continue
		}
		if err := cli.dispatch(args); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Printf("error: %s\n", err)
		}
		cli.app.WaitIdle()
	}
}

func (cli *commandLine) dispatch(args []string) error {
	switch args[0] {
	case "login":
		if len(args) != 3 {
			cli.printUsage()
			return nil
		}
		return cli.login(args[1], args[2])
	case "open":
		if len(args) < 2 {
			cli.printUsage()
			return nil
		}
		page, ok := pagesByName[args[1]]
		if !ok {
			return fmt.Errorf("unknown page %q", args[1])
		}
		if len(args) > 2 {
			cli.app.Open(page, args[2])
		} else {
			cli.app.Open(page)
		}
		return nil
	case "pages":
		for _, p := range nav.AllPages {
			fmt.Printf("  %s\n", p)
		}
		return nil
	case "whoami":
		sess := cli.app.Session().Current()
		if sess.User == nil {
			fmt.Println("anonymous")
		} else {
			fmt.Printf("%s (%s)\n", sess.User.Username, sess.User.Type)
		}
		return nil
	case "logout":
		cli.app.Logout()
		return nil
	case "quit", "exit":
		return errQuit
	default:
		cli.printUsage()
		return nil
	}
}

// loginSubmitter is what the login page exposes; anything else on screen
// means login must happen through "open login" first.
type loginSubmitter interface {
	Submit(emailOrUsername, password, userType string) error
}

func (cli *commandLine) login(userType, emailOrUsername string) error {
	if userType != user.TypeStudent && userType != user.TypeCoach {
		return fmt.Errorf("unknown user type %q", userType)
	}
	view, ok := cli.app.CurrentView().(loginSubmitter)
	if !ok {
		cli.app.Open(nav.Login)
		cli.app.WaitIdle()
		if view, ok = cli.app.CurrentView().(loginSubmitter); !ok {
			return errors.New("login page unavailable")
		}
	}

	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}
	return view.Submit(emailOrUsername, string(pwd), userType)
}
