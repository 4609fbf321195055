package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  list
  get <account_number>
  create <account_number> <customer_number> <customer_name> [balance]
  deposit <account_number> <amount>
  withdraw <account_number> <amount>
  close <account_number>
  overdrawn <account_number>
  clear-overdrawn <account_number>
  delete <account_number>
Environment:
  LEDGER_URL      base URL of the ledger API (default http://localhost:8080)
  LEDGER_TIMEOUT  per-request timeout, e.g. 5s (default 10s)`

var (
	success = color.New(color.FgGreen, color.Bold)
	failure = color.New(color.FgRed, color.Bold)
	label   = color.New(color.FgCyan)
)

func main() {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	c := clientFromEnv()
	if err := run(c, os.Args[1:], os.Stdout); err != nil {
		failure.Fprintln(os.Stderr, err) //nolint: errcheck
		os.Exit(1)
	}
}

func run(c *client, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(out, usage) //nolint: errcheck
		return nil
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "list":
		accounts, err := c.list()
		if err != nil {
			return err
		}
		for _, a := range accounts {
			printAccount(out, a)
		}
		return nil
	case "create":
		if len(args) < 3 {
			return errors.New("usage: create <account_number> <customer_number> <customer_name> [balance]")
		}
		req, err := createRequest(args)
		if err != nil {
			return err
		}
		a, err := c.create(req)
		if err != nil {
			return err
		}
		success.Fprintln(out, "Account created") //nolint: errcheck
		printAccount(out, a)
		return nil
	case "deposit", "withdraw":
		if len(args) < 2 {
			return fmt.Errorf("usage: %s <account_number> <amount>", cmd)
		}
		number, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		a, err := c.move(cmd, number, args[1])
		if err != nil {
			return err
		}
		success.Fprintf(out, "%s of %s on account %d done\n", cmd, args[1], number) //nolint: errcheck
		printAccount(out, a)
		return nil
	case "get", "close", "overdrawn", "clear-overdrawn", "delete":
		if len(args) < 1 {
			return fmt.Errorf("usage: %s <account_number>", cmd)
		}
		number, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		return runSingle(c, cmd, number, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func runSingle(c *client, cmd string, number int64, out io.Writer) error {
	var (
		a   *accountweb.AccountDTO
		err error
	)
	switch cmd {
	case "get":
		a, err = c.get(number)
	case "close":
		a, err = c.status(fiber.MethodPut, number, "close")
	case "overdrawn":
		a, err = c.status(fiber.MethodPut, number, "overdrawn")
	case "clear-overdrawn":
		a, err = c.status(fiber.MethodDelete, number, "overdrawn")
	case "delete":
		if err = c.delete(number); err == nil {
			success.Fprintf(out, "Account %d deleted\n", number) //nolint: errcheck
		}
		return err
	}
	if err != nil {
		return err
	}
	printAccount(out, a)
	return nil
}

func createRequest(args []string) (*accountweb.CreateAccountRequest, error) {
	number, err := parseNumber(args[0])
	if err != nil {
		return nil, err
	}
	customer, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid customer number %q", args[1])
	}
	req := &accountweb.CreateAccountRequest{
		AccountNumber:  &number,
		CustomerNumber: customer,
		CustomerName:   args[2],
	}
	if len(args) > 3 {
		balance, err := decimal.NewFromString(args[3])
		if err != nil {
			return nil, fmt.Errorf("invalid balance %q", args[3])
		}
		req.Balance = &balance
	}
	return req, nil
}

func parseNumber(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account number %q", raw)
	}
	return n, nil
}

func printAccount(out io.Writer, a *accountweb.AccountDTO) {
	label.Fprintf(out, "%d", a.AccountNumber)                      //nolint: errcheck
	fmt.Fprintf(out, "  customer=%d name=%q balance=%s status=%s\n", //nolint: errcheck
		a.CustomerNumber, a.CustomerName, a.Balance.StringFixed(2), a.AccountStatus)
}

// client talks to the ledger HTTP API with Fiber's client agent.
type client struct {
	baseURL string
	timeout time.Duration
}

func clientFromEnv() *client {
	return newClient(
		config.GetEnv("LEDGER_URL", "http://localhost:8080"),
		config.GetEnvAsDuration("LEDGER_TIMEOUT", 10*time.Second),
	)
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

func (c *client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

func (c *client) list() ([]*accountweb.AccountDTO, error) {
	var accounts []*accountweb.AccountDTO
	err := c.do(fiber.Get(c.url("/accounts")), &accounts)
	return accounts, err
}

func (c *client) get(number int64) (*accountweb.AccountDTO, error) {
	var a accountweb.AccountDTO
	err := c.do(fiber.Get(c.url("/accounts/%d", number)), &a)
	return &a, err
}

func (c *client) create(req *accountweb.CreateAccountRequest) (*accountweb.AccountDTO, error) {
	var a accountweb.AccountDTO
	err := c.do(fiber.Post(c.url("/accounts")).JSON(req), &a)
	return &a, err
}

func (c *client) move(op string, number int64, amount string) (*accountweb.AccountDTO, error) {
	var a accountweb.AccountDTO
	agent := fiber.Put(c.url("/accounts/%d/%s", number, op)).
		ContentType(fiber.MIMETextPlain).
		BodyString(amount)
	err := c.do(agent, &a)
	return &a, err
}

func (c *client) status(method string, number int64, path string) (*accountweb.AccountDTO, error) {
	var agent *fiber.Agent
	if method == fiber.MethodDelete {
		agent = fiber.Delete(c.url("/accounts/%d/%s", number, path))
	} else {
		agent = fiber.Put(c.url("/accounts/%d/%s", number, path))
	}
	var a accountweb.AccountDTO
	err := c.do(agent, &a)
	return &a, err
}

func (c *client) delete(number int64) error {
	return c.do(fiber.Delete(c.url("/accounts/%d", number)), nil)
}

// do sends the request and decodes the envelope's data into out. Error
// responses are turned into an error carrying the problem detail.
func (c *client) do(agent *fiber.Agent, out any) error {
	code, body, errs := agent.Timeout(c.timeout).Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errors.Join(errs...))
	}
	if code >= fiber.StatusBadRequest {
		var pd common.ProblemDetails
		if err := json.Unmarshal(body, &pd); err != nil || pd.Title == "" {
			return fmt.Errorf("request failed with status %d", code)
		}
		if pd.Kind != "" {
			return fmt.Errorf("%s (%s): %s", pd.Title, pd.Kind, pd.Detail)
		}
		return fmt.Errorf("%s: %s", pd.Title, pd.Detail)
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	env := common.Response{Data: out}
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
