package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/bag"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newStoredOrder(t *testing.T, grams int64, express bool) *order.Order {
	t.Helper()

	w, err := kernel.NewWeight(grams)
	require.NoError(t, err)
	item, err := order.NewLineItem(order.ServiceWashOnly, w, 1, 1000, express)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "customer", []order.LineItem{item}, order.PaymentCash, "desk", fixtureTime)
	require.NoError(t, err)
	return o
}

func newStoredTaggedOrder(t *testing.T, tagCode string, grams int64, express bool) *order.Order {
	t.Helper()

	o := newStoredOrder(t, grams, express)
	tag, err := order.NewTag(tagCode, order.TagRFID, fixtureTime, "tagger")
	require.NoError(t, err)
	require.NoError(t, o.BindTag(tag, "tagger", fixtureTime))
	return o
}

func newStoredBag(t *testing.T, seq int) *bag.Bag {
	t.Helper()

	b, err := bag.NewBag(kernel.NewUUID(), seq, bag.PriorityRegular, bag.DestinationFacility, 0, fixtureTime)
	require.NoError(t, err)
	return b
}
