package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pankajneema/curiousdevs0.1/internal/log"
	"github.com/pankajneema/curiousdevs0.1/portal"
)

func main() {
	baseURL := flag.String("api", "", "backend base URL (defaults to CURIOUSDEVS_API_URL)")
	timeout := flag.Duration("timeout", 15*time.Second, "per-request timeout")
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	logger := log.New("production")

	tokenPath, err := portal.DefaultTokenPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	client, session := portal.New(*baseURL, portal.NewFileTokenStore(tokenPath), logger)
	if err := session.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, client, session, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *portal.Client, session *portal.SessionStore, args []string) error {
	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: portalctl login <email> <password>")
		}
		user, err := session.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", user.Email, user.Role)
		return nil
	case "logout":
		session.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "whoami":
		user, err := session.ResolveCurrentUser(ctx)
		if err != nil {
			return err
		}
		if user == nil {
			fmt.Println("not logged in")
			return nil
		}
		return printJSON(user)
	case "projects":
		projects, err := client.Projects(ctx)
		if err != nil {
			return err
		}
		return printJSON(projects)
	case "project":
		if len(args) != 2 {
			return fmt.Errorf("usage: portalctl project <id>")
		}
		project, err := client.ProjectDetails(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(project)
	case "pay":
		if len(args) != 2 {
			return fmt.Errorf("usage: portalctl pay <project-id>")
		}
		result, err := client.ProcessProjectPayment(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("paid %.2f\n", result.PaidAmount)
		return nil
	case "leads":
		leads, err := client.Leads(ctx)
		if err != nil {
			return err
		}
		return printJSON(leads)
	case "bills":
		bills, err := client.MyBills(ctx)
		if err != nil {
			return err
		}
		return printJSON(bills)
	case "subscribe":
		if len(args) != 2 {
			return fmt.Errorf("usage: portalctl subscribe <email>")
		}
		_, err := client.SubscribeNewsletter(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Println("subscribed")
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: portalctl [flags] <command>

commands:
  login <email> <password>   start a session
  logout                     end the session
  whoami                     show the signed-in user
  projects                   list visible projects
  project <id>               show one project
  pay <project-id>           settle a project's outstanding amount
  leads                      list captured leads (admin)
  bills                      list my bills
  subscribe <email>          join the newsletter`)
}
