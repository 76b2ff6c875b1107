package gateway

import (
	nsqgw "github.com/glossylabs/campaign/services/campaign/gateway/nsq"
)

// FulfillmentGW bundles the outbound gateways for the campaign service
type FulfillmentGW struct {
	*nsqgw.Publisher
}

// NewFulfillmentGW creates the fulfillment gateway
func NewFulfillmentGW(publisher *nsqgw.Publisher) *FulfillmentGW {
	return &FulfillmentGW{Publisher: publisher}
}
