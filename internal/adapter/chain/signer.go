package chain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"

	"fundscope/internal/core/port"
)

// Signer signs transactions with accounts held in a go-ethereum keystore
// directory. Accounts are unlocked once when the signer is opened.
type Signer struct {
	ks      *keystore.KeyStore
	chainID *big.Int
}

// OpenKeystore loads every account stored in dir and unlocks it with
// passphrase.
func OpenKeystore(dir, passphrase string, chainID *big.Int) (*Signer, error) {
	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
	for _, acc := range ks.Accounts() {
		if err := ks.Unlock(acc, passphrase); err != nil {
			return nil, fmt.Errorf("unlock %s: %w", acc.Address.Hex(), err)
		}
	}
	return &Signer{ks: ks, chainID: chainID}, nil
}

// Accounts lists the addresses the signer can send from.
func (s *Signer) Accounts() []common.Address {
	if s == nil {
		return nil
	}
	accs := s.ks.Accounts()
	out := make([]common.Address, 0, len(accs))
	for _, acc := range accs {
		out = append(out, acc.Address)
	}
	return out
}

// TransactOpts returns signing options for from, or port.ErrUnknownAccount
// when the keystore does not hold it.
func (s *Signer) TransactOpts(from common.Address) (*bind.TransactOpts, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: transactions disabled", port.ErrUnknownAccount)
	}
	acc, err := s.ks.Find(accounts.Account{Address: from})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", port.ErrUnknownAccount, from.Hex())
	}
	return bind.NewKeyStoreTransactorWithChainID(s.ks, acc, s.chainID)
}
