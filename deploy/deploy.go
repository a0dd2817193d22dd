// Package deploy provides Operator Filter contract deployment routine.
package deploy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for the contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of the Operator Filter contract deployment.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to host the contract.
	Blockchain Blockchain

	// Local account used for transaction signing (must be unlocked). The
	// contract address is derived from this account, so repeating the call
	// with the same account and NEF is safe.
	LocalAccount *wallet.Account

	NEF      nef.File
	Manifest manifest.Manifest
}

// contractStatePollInterval is a period of the contract presence re-checks
// while waiting for the sent deployment transaction to persist.
const contractStatePollInterval = time.Second

// Deploy deploys the Operator Filter contract to the Neo network represented
// by given Prm.Blockchain and returns its on-chain address. Deployment
// progress is logged in detail.
//
// Deploy is idempotent: the address is pre-calculated from the deployer
// account and the provided NEF, and if a contract already resides on it,
// Deploy returns the address without sending any transaction. Contract
// updates are governed by the committee through the contract's own update
// method and are out of scope here.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	localActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	contractAddress := state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.NEF.Checksum, prm.Manifest.Name)

	onChain, err := isContractOnChain(prm.Blockchain, contractAddress)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check contract presence on the chain: %w", err)
	}
	if onChain {
		prm.Logger.Info("contract is already on the chain", zap.Stringer("address", contractAddress))
		return contractAddress, nil
	}

	prm.Logger.Info("contract is missing on the chain, deploying...", zap.Stringer("address", contractAddress))

	txHash, vub, err := management.New(localActor).Deploy(&prm.NEF, &prm.Manifest, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send transaction deploying the contract: %w", err)
	}

	prm.Logger.Info("transaction deploying the contract has been sent, waiting for the contract to appear...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	for {
		select {
		case <-ctx.Done():
			return util.Uint160{}, fmt.Errorf("wait for contract deployment: %w", ctx.Err())
		case <-time.After(contractStatePollInterval):
		}

		onChain, err = isContractOnChain(prm.Blockchain, contractAddress)
		if err != nil {
			prm.Logger.Warn("failed to check contract presence on the chain, will try again later", zap.Error(err))
			continue
		}
		if onChain {
			break
		}

		blockCount, err := prm.Blockchain.GetBlockCount()
		if err != nil {
			prm.Logger.Warn("failed to get chain height, will try again later", zap.Error(err))
			continue
		}
		if blockCount > vub+1 {
			return util.Uint160{}, fmt.Errorf("transaction deploying the contract expired at height %d", vub)
		}
	}

	prm.Logger.Info("contract successfully deployed", zap.Stringer("address", contractAddress))

	return contractAddress, nil
}

func isContractOnChain(b Blockchain, addr util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(addr)
	if err != nil {
		if isErrContractNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// isErrContractNotFound checks if the error returned by the RPC server means
// that the requested contract is missing from the chain.
func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}
