package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/opfilter-contract/rpc/opfilter"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddress := flag.String("contract", "", "Operator Filter contract address (LE script hash or Neo address)")
	registrantAddress := flag.String("registrant", "", "Registrant address to inspect (LE script hash or Neo address)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddress == "":
		log.Fatal("missing contract address")
	case *registrantAddress == "":
		log.Fatal("missing registrant address")
	}

	contract, err := parseUint160(*contractAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("parse contract address: %w", err))
	}

	registrant, err := parseUint160(*registrantAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("parse registrant address: %w", err))
	}

	err = dumpPolicy(*neoRPCEndpoint, contract, registrant)
	if err != nil {
		log.Fatal(err)
	}
}

// parseUint160 accepts both Neo addresses and little-endian script hashes in
// hex, with or without the '0x' prefix.
func parseUint160(s string) (util.Uint160, error) {
	if u, err := address.StringToUint160(s); err == nil {
		return u, nil
	}
	return util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
}

// dumpPolicy prints the registration state of the registrant along with its
// subscription, subscribers and the effective filter lists applied by
// isOperatorAllowed.
func dumpPolicy(neoRPCEndpoint string, contract, registrant util.Uint160) error {
	c, err := rpcclient.New(context.Background(), neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("RPC client dial: %w", err)
	}

	defer c.Close()

	err = c.Init()
	if err != nil {
		return fmt.Errorf("RPC client init: %w", err)
	}

	reader := opfilter.NewReader(invoker.New(c, nil), contract)

	registered, err := reader.IsRegistered(registrant)
	if err != nil {
		return fmt.Errorf("check registration: %w", err)
	}

	fmt.Printf("registrant: %s (%s)\n", address.Uint160ToString(registrant), registrant.StringLE())
	fmt.Printf("registered: %t\n", registered)

	if !registered {
		fmt.Println("all operators are allowed")
		return nil
	}

	subscription, err := reader.SubscriptionOf(registrant)
	if err != nil {
		return fmt.Errorf("get subscription: %w", err)
	}

	if subscription.Equals(util.Uint160{}) {
		fmt.Println("subscription: none, the registrant keeps its own lists")
	} else {
		fmt.Printf("subscription: %s\n", subscription.StringLE())
	}

	subscribers, err := reader.Subscribers(registrant)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}

	fmt.Printf("subscribers (%d):\n", len(subscribers))
	for i := range subscribers {
		fmt.Printf("\t%s\n", subscribers[i].StringLE())
	}

	operators, err := reader.FilteredOperators(registrant)
	if err != nil {
		return fmt.Errorf("list filtered operators: %w", err)
	}

	fmt.Printf("filtered operators (%d):\n", len(operators))
	for i := range operators {
		fmt.Printf("\t%s\n", operators[i].StringLE())
	}

	codeHashes, err := reader.FilteredCodeHashes(registrant)
	if err != nil {
		return fmt.Errorf("list filtered code hashes: %w", err)
	}

	fmt.Printf("filtered code hashes (%d):\n", len(codeHashes))
	for i := range codeHashes {
		fmt.Printf("\t%s\n", codeHashes[i].StringLE())
	}

	return nil
}
