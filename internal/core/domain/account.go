package domain

import "github.com/ethereum/go-ethereum/common"

// Capabilities describes which actions a given account may take on a
// campaign. The account is always passed in explicitly by the caller.
type Capabilities struct {
	CanFund     bool
	CanWithdraw bool
	CanEdit     bool
}

// CapabilitiesFor derives the capabilities of account on a campaign owned by
// owner whose contract reports state. The zero address is treated as "no
// connected account" and gets no capabilities.
func CapabilitiesFor(account, owner common.Address, state ContractState) Capabilities {
	if account == (common.Address{}) {
		return Capabilities{}
	}
	isOwner := account == owner
	return Capabilities{
		CanFund:     state == ContractStateActive,
		CanWithdraw: isOwner && state == ContractStateSuccessful,
		CanEdit:     isOwner,
	}
}
