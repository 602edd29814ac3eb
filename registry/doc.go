// Package registry implements the vehicle registration record state machine.
//
// Two implementations of the interfaces.Registry contract are provided:
//
// MemoryRegistry holds all records in process memory behind a mutex. It is the
// authoritative implementation of the registry semantics: sequential record
// ids, plate uniqueness, exact-fee enforcement, and single-admin review. It
// backs tests and local deployments that run without a chain.
//
// OnchainRegistryClient adapts the same interface onto the deployed
// VehicleRegistration smart contract through go-ethereum bindings. Reads are
// plain contract calls; writes are signed transactions that the client waits
// on until mined, translating well-known revert reasons back into the
// sentinel errors of the interfaces package.
//
// # Transaction Operations
//
// All state-modifying operations of the on-chain client require transaction
// signing. Before calling Register or Review you must call SetTransactOpts
// with options carrying the caller's private key. Read-only operations work
// immediately after construction.
//
// # Usage Example
//
//	client, err := registry.NewOnchainRegistryClient(ethClient, ethClient, contractAddress)
//	if err != nil {
//	    log.Fatalf("Failed to create registry client: %v", err)
//	}
//
//	privateKey, _ := crypto.HexToECDSA("your-private-key")
//	auth, _ := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
//	client.SetTransactOpts(auth)
//
//	id, err := client.Register(ctx, caller, submission, interfaces.RegistrationFeeWei())
package registry
