package account

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/account"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for the account ledger.
//
// Routes:
//   - GET    /accounts                            : List every account.
//   - GET    /accounts/:accountNumber             : Look up one account.
//   - POST   /accounts                            : Create an account.
//   - PUT    /accounts/:accountNumber/withdraw    : Withdraw the plain-text amount in the body.
//   - PUT    /accounts/:accountNumber/deposit     : Deposit the plain-text amount in the body.
//   - PUT    /accounts/:accountNumber/close       : Close the account.
//   - PUT    /accounts/:accountNumber/overdrawn   : Mark the account overdrawn.
//   - DELETE /accounts/:accountNumber/overdrawn   : Clear the overdrawn status.
//   - DELETE /accounts/:accountNumber             : Delete the account.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	r := app.Group("/accounts")
	r.Get("/", ListAccounts(accountSvc))
	r.Get("/:accountNumber", GetAccount(accountSvc))
	r.Post("/", CreateAccount(accountSvc))
	r.Put("/:accountNumber/withdraw", Withdraw(accountSvc))
	r.Put("/:accountNumber/deposit", Deposit(accountSvc))
	r.Put("/:accountNumber/close", transition("Account closed", accountSvc.CloseAccount))
	r.Put("/:accountNumber/overdrawn", transition("Account marked overdrawn", accountSvc.MarkOverdrawn))
	r.Delete("/:accountNumber/overdrawn", transition("Overdrawn status removed", accountSvc.RemoveOverdrawnStatus))
	r.Delete("/:accountNumber", DeleteAccount(accountSvc))
}

// ListAccounts returns a Fiber handler listing every account.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Accounts fetched"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /accounts [get]
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.ListAccounts(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", toDTOs(accounts))
	}
}

// GetAccount returns a Fiber handler for looking up one account by number.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 200 {object} common.Response "Account fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid account number"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{accountNumber} [get]
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountNumberParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err)
		}
		a, err := accountSvc.GetAccount(c.UserContext(), number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Account not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", toDTO(a))
	}
}

// CreateAccount returns a Fiber handler for creating an account. Posting an
// account that already exists with the same customer returns the stored one.
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 409 {object} common.ProblemDetails "Account number held by another customer"
// @Router /accounts [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.CreateAccount(c.UserContext(), input.toDomain())
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		log.Infof("Account created: %d", a.Number)
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toDTO(a))
	}
}

// Withdraw returns a Fiber handler that withdraws the amount sent as the raw
// request body, e.g. "12.50".
// @Summary Withdraw funds
// @Tags accounts
// @Accept plain
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 200 {object} common.Response "Withdrawal successful"
// @Failure 400 {object} common.ProblemDetails "Invalid amount or insufficient funds"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{accountNumber}/withdraw [put]
func Withdraw(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountNumberParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err)
		}
		amount := strings.TrimSpace(string(c.Body()))
		log.Infof("Withdraw handler: account %d, amount %q", number, amount)
		a, err := accountSvc.Withdraw(c.UserContext(), number, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", toDTO(a))
	}
}

// Deposit returns a Fiber handler that deposits the amount sent as the raw
// request body.
// @Summary Deposit funds
// @Tags accounts
// @Accept plain
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 200 {object} common.Response "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid amount"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{accountNumber}/deposit [put]
func Deposit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountNumberParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err)
		}
		amount := strings.TrimSpace(string(c.Body()))
		log.Infof("Deposit handler: account %d, amount %q", number, amount)
		a, err := accountSvc.Deposit(c.UserContext(), number, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", toDTO(a))
	}
}

// DeleteAccount returns a Fiber handler that removes an account.
// @Summary Delete an account
// @Tags accounts
// @Param accountNumber path int true "Account number"
// @Success 204 "Account deleted"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{accountNumber} [delete]
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountNumberParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err)
		}
		if err := accountSvc.DeleteAccount(c.UserContext(), number); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		log.Infof("Account deleted: %d", number)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func transition(
	message string,
	op func(ctx context.Context, number int64) (*account.Account, error),
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountNumberParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err)
		}
		a, err := op(c.UserContext(), number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account status", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, message, toDTO(a))
	}
}

// accountNumberParam parses the :accountNumber path value.
func accountNumberParam(c *fiber.Ctx) (int64, error) {
	raw := c.Params("accountNumber")
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &account.Error{
			Kind:    account.KindInvalidArgument,
			Message: fmt.Sprintf("Account number must be an integer, got %q.", raw),
		}
	}
	return number, nil
}
