// Package accountrepo provides data transfer objects and mapping functions
// for escrow account persistence. Accounts are keyed by the owning party's
// normalized address.
package accountrepo

import (
	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting escrow accounts.
type AccountDTO struct {
	Party   string `gorm:"primaryKey"`
	Balance int64
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(account *escrow.Account) AccountDTO {
	return AccountDTO{
		Party:   account.Party().String(),
		Balance: account.Balance().Amount(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*escrow.Account, error) {
	party, err := kernel.NewAddress(dto.Party)
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	return escrow.RestoreAccount(party, balance)
}
