// Package main (cmd/httpserver) implements the vehicle registration API server.
//
// The server exposes HTTP endpoints for submitting registration applications,
// browsing records, checking plate availability, downloading attachments, and
// resolving pending records as the admin. Attachments are pinned to IPFS and
// optionally mirrored to the local filesystem and S3-compatible storage.
//
// The server supports two registry backends:
//
//   - onchain: binds to a deployed VehicleRegistration contract through an
//     Ethereum RPC endpoint. State-changing operations require a private key.
//
//   - memory: an in-process registry with the same semantics. Suitable for
//     development and demos; records do not survive a restart.
//
// Configuration is handled through command-line flags, with separate settings
// for blockchain connectivity, attachment storage locations, HTTP endpoints,
// logging, and performance tuning.
//
// The server implements graceful shutdown on receiving termination signals
// (SIGINT/SIGTERM) and supports health checks, metrics collection, and
// optional profiling endpoints.
//
// Example usage against a deployed contract:
//
//	registration-server --rpc-addr=http://localhost:8545 \
//	    --contract-address=0x5FbDB2315678afecb367f032d93F642f64180aa3 \
//	    --private-key=ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80 \
//	    --storage-uri=ipfs://127.0.0.1:5001/?timeout=30s \
//	    --storage-uri=file:///var/lib/vehicle-registry
//
// Example usage for local development:
//
//	registration-server --registry-mode=memory \
//	    --admin-address=0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266
package main
