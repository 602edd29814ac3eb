// Package main (cmd/registry_client) implements a command-line client for the
// VehicleRegistration contract.
//
// The client talks to the contract directly over an Ethereum RPC endpoint,
// bypassing the API server. Read-only commands (admin, list, get, pending,
// plate) need only the RPC and contract addresses; state-changing commands
// (submit, review) additionally require a private key, which also determines
// the caller identity recorded on-chain.
//
// The submit command reads the three attachment files from disk, pins them to
// the configured storage (IPFS, plus optional mirrors), and registers the
// record with the fixed fee attached to the transaction. The review command
// resolves a pending record to approved or rejected and is only accepted from
// the contract's admin address.
//
// All commands print their result as indented JSON on stdout.
//
// Example usage:
//
//	registry-client --rpc-addr=http://localhost:8545 \
//	    --contract-address=0x5FbDB2315678afecb367f032d93F642f64180aa3 \
//	    --private-key=ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80 \
//	    submit --full-name="Nguyen Van A" --national-id=012345678901 \
//	    --address="12 Pho Hue, Ha Noi" --phone=0912345678 \
//	    --plate=29A-12345 --brand=Honda --model="Wave Alpha" --color=Red \
//	    --year=2021 --front-image=front.jpg --back-image=back.jpg \
//	    --document=invoice.pdf
//
//	registry-client --rpc-addr=http://localhost:8545 \
//	    --contract-address=0x5FbDB2315678afecb367f032d93F642f64180aa3 \
//	    --private-key=<admin key> review --id=1 --decision=approve
package main
