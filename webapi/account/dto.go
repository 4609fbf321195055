package account

import (
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
)

//revive:disable

// CreateAccountRequest represents the request body for creating a new account.
// A missing accountNumber is rejected by the ledger; a missing balance means zero.
type CreateAccountRequest struct {
	AccountNumber  *int64           `json:"accountNumber"`
	CustomerNumber int64            `json:"customerNumber" validate:"gte=0"`
	CustomerName   string           `json:"customerName" validate:"max=256"`
	Balance        *decimal.Decimal `json:"balance"`
}

// AccountDTO is the JSON shape of an account.
type AccountDTO struct {
	AccountNumber  int64           `json:"accountNumber"`
	CustomerNumber int64           `json:"customerNumber"`
	CustomerName   string          `json:"customerName"`
	Balance        decimal.Decimal `json:"balance"`
	AccountStatus  account.Status  `json:"accountStatus"`
}

//revive:enable

func (r *CreateAccountRequest) toDomain() *account.Account {
	b := account.NewBuilder().
		WithCustomerNumber(r.CustomerNumber).
		WithCustomerName(r.CustomerName)
	if r.AccountNumber != nil {
		b = b.WithNumber(*r.AccountNumber)
	}
	if r.Balance != nil {
		b = b.WithBalance(*r.Balance)
	}
	return b.Build()
}

func toDTO(a *account.Account) AccountDTO {
	return AccountDTO{
		AccountNumber:  a.Number,
		CustomerNumber: a.CustomerNumber,
		CustomerName:   a.CustomerName,
		Balance:        a.Balance,
		AccountStatus:  a.Status,
	}
}

func toDTOs(accounts []*account.Account) []AccountDTO {
	out := make([]AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toDTO(a))
	}
	return out
}
