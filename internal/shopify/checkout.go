package shopify

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Attribute is a custom key/value pair attached to a checkout line.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LineItemInput is one (variant, quantity) pair sent to the platform.
type LineItemInput struct {
	VariantID        string      `json:"variantId"`
	Quantity         int         `json:"quantity"`
	CustomAttributes []Attribute `json:"customAttributes,omitempty"`
}

func validateLineItems(items []LineItemInput) error {
	if len(items) == 0 {
		return errors.New("shopify: at least one line item required")
	}
	for _, it := range items {
		if strings.TrimSpace(it.VariantID) == "" {
			return errors.New("shopify: line item variant id required")
		}
		if it.Quantity < 1 {
			return fmt.Errorf("shopify: line item %s quantity must be positive", it.VariantID)
		}
	}
	return nil
}

// CreateCheckout opens a checkout session seeded with items.
func (c *Client) CreateCheckout(ctx context.Context, items []LineItemInput) (*Checkout, error) {
	if err := validateLineItems(items); err != nil {
		return nil, err
	}
	var data struct {
		CheckoutCreate *checkoutPayload `json:"checkoutCreate"`
	}
	vars := map[string]interface{}{"input": map[string]interface{}{"lineItems": items}}
	if err := c.do(ctx, mutationCheckoutCreate, vars, &data); err != nil {
		return nil, err
	}
	return data.CheckoutCreate.result()
}

// AddLineItems appends items to an existing checkout session.
func (c *Client) AddLineItems(ctx context.Context, checkoutID string, items []LineItemInput) (*Checkout, error) {
	if strings.TrimSpace(checkoutID) == "" {
		return nil, errors.New("shopify: checkout id required")
	}
	if err := validateLineItems(items); err != nil {
		return nil, err
	}
	var data struct {
		CheckoutLineItemsAdd *checkoutPayload `json:"checkoutLineItemsAdd"`
	}
	vars := map[string]interface{}{"checkoutId": checkoutID, "lineItems": items}
	if err := c.do(ctx, mutationCheckoutLineItemsAdd, vars, &data); err != nil {
		return nil, err
	}
	return data.CheckoutLineItemsAdd.result()
}

// ReplaceLineItems overwrites the checkout's lines with items.
func (c *Client) ReplaceLineItems(ctx context.Context, checkoutID string, items []LineItemInput) (*Checkout, error) {
	if strings.TrimSpace(checkoutID) == "" {
		return nil, errors.New("shopify: checkout id required")
	}
	if err := validateLineItems(items); err != nil {
		return nil, err
	}
	var data struct {
		CheckoutLineItemsReplace *checkoutPayload `json:"checkoutLineItemsReplace"`
	}
	vars := map[string]interface{}{"checkoutId": checkoutID, "lineItems": items}
	if err := c.do(ctx, mutationCheckoutLineItemsReplace, vars, &data); err != nil {
		return nil, err
	}
	return data.CheckoutLineItemsReplace.result()
}

// ApplyDiscountCode applies a discount code to a checkout session.
func (c *Client) ApplyDiscountCode(ctx context.Context, checkoutID, code string) (*Checkout, error) {
	if strings.TrimSpace(checkoutID) == "" {
		return nil, errors.New("shopify: checkout id required")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("shopify: discount code required")
	}
	var data struct {
		Payload *checkoutPayload `json:"checkoutDiscountCodeApplyV2"`
	}
	vars := map[string]interface{}{"checkoutId": checkoutID, "discountCode": code}
	if err := c.do(ctx, mutationCheckoutDiscountCodeApply, vars, &data); err != nil {
		return nil, err
	}
	return data.Payload.result()
}
