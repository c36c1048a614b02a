package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CampaignRef is one entry of the factory registry. It identifies a deployed
// campaign contract and the wallet that created it.
type CampaignRef struct {
	Address   common.Address
	Owner     common.Address
	Name      string
	CreatedAt time.Time
}

// ContractState mirrors the uint8 returned by the contract's state() method.
type ContractState uint8

const (
	ContractStateActive ContractState = iota
	ContractStateSuccessful
	ContractStateFailed
)

func (s ContractState) String() string {
	switch s {
	case ContractStateActive:
		return "active"
	case ContractStateSuccessful:
		return "successful"
	case ContractStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CampaignDetails holds the descriptive and owner-controlled fields of a
// campaign contract. Funding figures live in CampaignSnapshot.
type CampaignDetails struct {
	Address     common.Address
	Name        string
	Description string
	Owner       common.Address
	State       ContractState
	Tiers       []Tier
}
