package chain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const campaignABIJSON = `[
  {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"description","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"goal","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"deadline","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getContractBalance","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"state","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"getTiers","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple[]","internalType":"struct Crowdfunding.Tier[]","components":[
    {"name":"name","type":"string"},
    {"name":"amount","type":"uint256"},
    {"name":"backers","type":"uint256"}
  ]}]},
  {"type":"function","name":"fund","stateMutability":"payable","inputs":[{"name":"_tierIndex","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"addTier","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"string"},{"name":"_amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"removeTier","stateMutability":"nonpayable","inputs":[{"name":"_index","type":"uint256"}],"outputs":[]}
]`

const factoryABIJSON = `[
  {"type":"function","name":"getAllCampaigns","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple[]","internalType":"struct CrowdfundingFactory.Campaign[]","components":[
    {"name":"campaignAddress","type":"address"},
    {"name":"owner","type":"address"},
    {"name":"name","type":"string"},
    {"name":"creationTime","type":"uint256"}
  ]}]},
  {"type":"function","name":"getUserCampaigns","stateMutability":"view","inputs":[{"name":"_user","type":"address"}],"outputs":[{"name":"","type":"tuple[]","internalType":"struct CrowdfundingFactory.Campaign[]","components":[
    {"name":"campaignAddress","type":"address"},
    {"name":"owner","type":"address"},
    {"name":"name","type":"string"},
    {"name":"creationTime","type":"uint256"}
  ]}]}
]`

var (
	campaignABI = mustParseABI(campaignABIJSON)
	factoryABI  = mustParseABI(factoryABIJSON)
)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}
	return parsed
}

// tierTuple mirrors Crowdfunding.Tier.
type tierTuple struct {
	Name    string
	Amount  *big.Int
	Backers *big.Int
}

// campaignTuple mirrors CrowdfundingFactory.Campaign.
type campaignTuple struct {
	CampaignAddress common.Address
	Owner           common.Address
	Name            string
	CreationTime    *big.Int
}
