package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stakebridge/stakebridge/internal/model"
)

// IAPIClient is the business API of the staking platform: the source of
// pending withdrawals and open transactions and the sink for verification
// results.
type IAPIClient interface {
	FetchOpenTransactions(context.Context) ([]model.OpenTransaction, error)
	FetchPendingWithdrawals(context.Context) ([]model.WithdrawalRequest, error)
	ReportVerified(ctx context.Context, transactionID, signature string) error
	ReportInvalidated(ctx context.Context, transactionID, reason string) error
}

type APIClient struct {
	baseURL     string
	secret      string
	signAddress string
	client      *http.Client
	logger      *zap.SugaredLogger
}

func NewAPIClient(baseURL, secret, signAddress string, logger *zap.SugaredLogger) *APIClient {
	return &APIClient{
		baseURL:     baseURL,
		secret:      secret,
		signAddress: signAddress,
		client:      &http.Client{Timeout: 30 * time.Second},
		logger:      logger,
	}
}

func (c *APIClient) FetchOpenTransactions(ctx context.Context) ([]model.OpenTransaction, error) {
	body, err := c.makeRequest(ctx, http.MethodGet, "/openTransaction/open", nil)
	if err != nil {
		return nil, err
	}

	var txs []model.OpenTransaction
	if err = json.Unmarshal(body, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *APIClient) FetchPendingWithdrawals(ctx context.Context) ([]model.WithdrawalRequest, error) {
	body, err := c.makeRequest(ctx, http.MethodGet, "/withdrawal/pending", nil)
	if err != nil {
		return nil, err
	}

	var withdrawals []model.WithdrawalRequest
	if err = json.Unmarshal(body, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (c *APIClient) ReportVerified(ctx context.Context, transactionID, signature string) error {
	payload := map[string]string{"signature": signature}
	_, err := c.makeRequest(ctx, http.MethodPut, "/openTransaction/"+transactionID+"/verified", payload)
	return err
}

func (c *APIClient) ReportInvalidated(ctx context.Context, transactionID, reason string) error {
	payload := map[string]string{"reason": reason}
	_, err := c.makeRequest(ctx, http.MethodPut, "/openTransaction/"+transactionID+"/invalidated", payload)
	return err
}

func (c *APIClient) makeRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}

	token, err := c.signedToken()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, res.Body); err != nil {
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		c.logger.Errorw("api request failed",
			"method", method,
			"path", path,
			"status", res.StatusCode,
		)
		return nil, fmt.Errorf("%s %s: %w: %d", method, path, ErrUnexpectedStatusCode, res.StatusCode)
	}

	return buf.Bytes(), nil
}

// signedToken issues a short-lived token per request; jti makes tokens
// single-use on the API side.
func (c *APIClient) signedToken() (string, error) {
	claims := jwt.MapClaims{
		"address": c.signAddress,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(5 * time.Minute).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.secret))
}
