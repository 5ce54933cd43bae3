package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SandboxURL    = "https://payments.sandbox.braintree-api.com/graphql"
	ProductionURL = "https://payments.braintree-api.com/graphql"

	braintreeVersion = "2019-01-01"
)

const createClientTokenMutation = `mutation CreateClientToken($input: CreateClientTokenInput) {
  createClientToken(input: $input) {
    clientToken
  }
}`

const chargePaymentMethodMutation = `mutation ChargePaymentMethod($input: ChargePaymentMethodInput!) {
  chargePaymentMethod(input: $input) {
    transaction {
      id
      status
      amount {
        value
        currencyCode
      }
    }
  }
}`

// BraintreeConfig berisi kredensial merchant. MerchantAccountID opsional;
// kosong berarti akun default merchant.
type BraintreeConfig struct {
	Environment       string
	MerchantID        string
	MerchantAccountID string
	PublicKey         string
	PrivateKey        string
}

// Braintree memanggil Braintree GraphQL API.
type Braintree struct {
	endpoint          string
	merchantAccountID string
	publicKey         string
	privateKey        string
	client            *http.Client
}

// NewBraintree membuat gateway Braintree. Environment "production" memakai
// endpoint produksi, selain itu sandbox.
func NewBraintree(cfg BraintreeConfig) *Braintree {
	endpoint := SandboxURL
	if cfg.Environment == "production" {
		endpoint = ProductionURL
	}
	return &Braintree{
		endpoint:          endpoint,
		merchantAccountID: cfg.MerchantAccountID,
		publicKey:         cfg.PublicKey,
		privateKey:        cfg.PrivateKey,
		client:            &http.Client{Timeout: 30 * time.Second},
	}
}

// WithEndpoint mengganti URL GraphQL, dipakai untuk pengujian.
func (b *Braintree) WithEndpoint(endpoint string) *Braintree {
	b.endpoint = endpoint
	return b
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message    string `json:"message"`
	Extensions struct {
		ErrorClass string `json:"errorClass"`
		LegacyCode string `json:"legacyCode"`
	} `json:"extensions"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

func (b *Braintree) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) ([]graphQLError, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("encode braintree request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build braintree request: %w", err)
	}
	req.SetBasicAuth(b.publicKey, b.privateKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Braintree-Version", braintreeVersion)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("braintree request failed: %w", err)
	}
	defer resp.Body.Close()

	var gqlResp graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("braintree returned status %d: %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 500 || (resp.StatusCode >= 400 && len(gqlResp.Errors) == 0) {
		return nil, fmt.Errorf("braintree returned status %d", resp.StatusCode)
	}
	if len(gqlResp.Data) > 0 && string(gqlResp.Data) != "null" {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return nil, fmt.Errorf("decode braintree data: %w", err)
		}
	}
	return gqlResp.Errors, nil
}

func joinMessages(errs []graphQLError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func (b *Braintree) ClientToken(ctx context.Context) (string, error) {
	var data struct {
		CreateClientToken struct {
			ClientToken string `json:"clientToken"`
		} `json:"createClientToken"`
	}
	input := map[string]interface{}{}
	if b.merchantAccountID != "" {
		input["clientToken"] = map[string]interface{}{"merchantAccountId": b.merchantAccountID}
	}
	variables := map[string]interface{}{"input": input}

	gqlErrs, err := b.do(ctx, createClientTokenMutation, variables, &data)
	if err != nil {
		return "", err
	}
	if len(gqlErrs) > 0 {
		return "", fmt.Errorf("braintree client token: %s", joinMessages(gqlErrs))
	}
	if data.CreateClientToken.ClientToken == "" {
		return "", fmt.Errorf("braintree client token: empty token")
	}
	return data.CreateClientToken.ClientToken, nil
}

// successStatuses adalah status transaksi yang berarti dana berhasil diotorisasi.
var successStatuses = map[string]bool{
	"AUTHORIZED":               true,
	"SUBMITTED_FOR_SETTLEMENT": true,
	"SETTLING":                 true,
	"SETTLED":                  true,
	"SETTLEMENT_PENDING":       true,
}

func (b *Braintree) Sale(ctx context.Context, amount decimal.Decimal, nonce string) (*SaleResult, error) {
	var data struct {
		ChargePaymentMethod *struct {
			Transaction struct {
				ID     string `json:"id"`
				Status string `json:"status"`
				Amount struct {
					Value        string `json:"value"`
					CurrencyCode string `json:"currencyCode"`
				} `json:"amount"`
			} `json:"transaction"`
		} `json:"chargePaymentMethod"`
	}
	transaction := map[string]interface{}{"amount": amount.StringFixed(2)}
	if b.merchantAccountID != "" {
		transaction["merchantAccountId"] = b.merchantAccountID
	}
	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"paymentMethodId": nonce,
			"transaction":     transaction,
		},
	}

	gqlErrs, err := b.do(ctx, chargePaymentMethodMutation, variables, &data)
	if err != nil {
		return nil, err
	}
	if len(gqlErrs) > 0 || data.ChargePaymentMethod == nil {
		return nil, &DeclinedError{Message: joinMessages(gqlErrs)}
	}

	tx := data.ChargePaymentMethod.Transaction
	if !successStatuses[tx.Status] {
		return nil, &DeclinedError{
			TransactionID: tx.ID,
			Status:        tx.Status,
			Message:       "transaction was not approved",
		}
	}

	charged, err := decimal.NewFromString(tx.Amount.Value)
	if err != nil {
		charged = amount
	}
	return &SaleResult{
		TransactionID: tx.ID,
		Status:        tx.Status,
		Amount:        charged,
		Currency:      tx.Amount.CurrencyCode,
	}, nil
}
