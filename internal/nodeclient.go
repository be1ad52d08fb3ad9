package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stakebridge/stakebridge/internal/model"
)

// INodeClient covers the two node calls the pipeline needs: structural
// decoding of a raw transaction and verification of the issuer signature.
type INodeClient interface {
	DecodeRawTransaction(ctx context.Context, rawTx string) (model.RawTransaction, error)
	VerifyMessage(ctx context.Context, address, signature, message string) (bool, error)
}

type NodeClient struct {
	url      string
	user     string
	password string
	client   *http.Client
	logger   *zap.SugaredLogger
}

func NewNodeClient(url, user, password string, logger *zap.SugaredLogger) *NodeClient {
	return &NodeClient{
		url:      url,
		user:     user,
		password: password,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      string        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *NodeClient) DecodeRawTransaction(ctx context.Context, rawTx string) (model.RawTransaction, error) {
	var tx model.RawTransaction
	err := c.call(ctx, "decoderawtransaction", []interface{}{rawTx}, &tx)
	if err != nil {
		return model.RawTransaction{}, err
	}
	return tx, nil
}

func (c *NodeClient) VerifyMessage(ctx context.Context, address, signature, message string) (bool, error) {
	var ok bool
	err := c.call(ctx, "verifymessage", []interface{}{address, signature, message}, &ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (c *NodeClient) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	b, err := json.Marshal(rpcRequest{JSONRPC: "1.0", ID: "stakebridge", Method: method, Params: params})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, res.Body); err != nil {
		return err
	}

	var rpcRes rpcResponse
	if err = json.Unmarshal(buf.Bytes(), &rpcRes); err != nil {
		return err
	}
	if rpcRes.Error != nil {
		c.logger.Errorw("node rpc error",
			"method", method,
			"code", rpcRes.Error.Code,
			"message", rpcRes.Error.Message,
		)
		return fmt.Errorf("%s: %w: %s", method, ErrRPCFailed, rpcRes.Error.Message)
	}

	return json.Unmarshal(rpcRes.Result, result)
}
