package configs

import "time"

// Chain holds configuration for the blockchain client. RPCURL points at an
// Ethereum JSON-RPC endpoint and ChainID must match the network it serves,
// since transactions are signed for that chain. FactoryAddress is the
// CrowdfundingFactory contract listing every campaign.
type Chain struct {
	RPCURL         string `env:"RPC_URL" envDefault:"https://ethereum-sepolia-rpc.publicnode.com"`
	ChainID        int64  `env:"ID" envDefault:"11155111"`
	FactoryAddress string `env:"FACTORY_ADDRESS,required"`

	// KeystoreDir is a go-ethereum keystore directory. Every account found
	// in it is unlocked with KeystorePassphrase at startup and may be used
	// as the sender of relayed transactions. Empty disables transactions.
	KeystoreDir        string `env:"KEYSTORE_DIR"`
	KeystorePassphrase string `env:"KEYSTORE_PASSPHRASE"`

	// RequestsPerSecond and Burst bound the rate of RPC calls.
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND" envDefault:"20"`
	Burst             int     `env:"BURST" envDefault:"10"`

	// CallTimeout bounds every single RPC call.
	CallTimeout time.Duration `env:"CALL_TIMEOUT" envDefault:"10s"`
	// WaitReceipt makes transaction submission block until mined.
	WaitReceipt bool `env:"WAIT_RECEIPT" envDefault:"true"`
	// ReceiptTimeout bounds waiting for a transaction to be mined.
	ReceiptTimeout time.Duration `env:"RECEIPT_TIMEOUT" envDefault:"2m"`

	// SnapshotConcurrency caps parallel snapshot reads when listing.
	SnapshotConcurrency int `env:"SNAPSHOT_CONCURRENCY" envDefault:"8"`
}
