// Package kashier implements the Kashier payment-gateway boundary: the
// signed hash for the hosted checkout redirect and signature verification
// for inbound payment webhooks. Both sides use HMAC-SHA256 over a
// deterministic parameter string with the merchant API key as secret.
package kashier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Client holds the merchant credentials and endpoint configuration.
type Client struct {
	merchantID  string
	apiKey      string
	checkoutURL string
	redirectURL string
}

// NewClient creates a Kashier client. Credentials come from the service
// configuration; the client never reads the environment.
func NewClient(merchantID, apiKey, checkoutURL, redirectURL string) *Client {
	return &Client{
		merchantID:  merchantID,
		apiKey:      apiKey,
		checkoutURL: strings.TrimRight(checkoutURL, "/"),
		redirectURL: redirectURL,
	}
}

// CheckoutHash computes the order hash for the hosted payment page:
// HMAC-SHA256 over "merchantID.orderID.amount.currency", hex-encoded.
// The amount is serialized as a whole-unit decimal string.
func (c *Client) CheckoutHash(orderID string, amount int64, currency string) string {
	path := fmt.Sprintf("%s.%s.%s.%s", c.merchantID, orderID, strconv.FormatInt(amount, 10), currency)
	return c.sign(path)
}

// CheckoutURL builds the redirect URL for the hosted payment page.
func (c *Client) CheckoutURL(orderID string, amount int64, currency string) string {
	q := url.Values{}
	q.Set("merchantId", c.merchantID)
	q.Set("orderId", orderID)
	q.Set("amount", strconv.FormatInt(amount, 10))
	q.Set("currency", currency)
	q.Set("hash", c.CheckoutHash(orderID, amount, currency))
	q.Set("merchantRedirect", c.redirectURL)
	q.Set("allowedMethods", "card,wallet")
	return c.checkoutURL + "/?" + q.Encode()
}

// VerifyWebhook checks an inbound webhook's signature. The expected
// signature is HMAC-SHA256 over the non-signature parameters joined as
// "key=value&..." in ascending key order. The comparison is constant-time;
// a mismatch means the webhook must be rejected, never trusted.
func (c *Client) VerifyWebhook(params map[string]string, signature string) bool {
	if signature == "" {
		return false
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	expected := c.sign(strings.Join(pairs, "&"))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(c.apiKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
