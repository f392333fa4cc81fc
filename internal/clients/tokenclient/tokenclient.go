package tokenclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/stakelabs/staking-ledger/internal/clients/client"
	"github.com/stakelabs/staking-ledger/internal/config"
	"github.com/stakelabs/staking-ledger/internal/types"
)

const invokeTemplatePath = "/v1/contracts/{index}/{subindex}/invoke/{entrypoint}"

// Client invokes the token contract's entry points through the host node's
// contract invocation API. It keeps no state of its own.
type Client struct {
	httpClient *http.Client
	cfg        *config.TokenConfig
}

func NewClient(cfg *config.TokenConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) IsOperatorOf(
	ctx context.Context,
	owner types.AccountAddress,
	stakingContract types.ContractAddress,
	tokenContract types.ContractAddress,
) (bool, error) {
	params := &OperatorOfQueryParams{
		Queries: []OperatorOfQuery{{
			Owner:   owner.String(),
			Address: stakingContract,
		}},
	}

	callForOperatorOf := func() (*OperatorOfQueryResponse, error) {
		return invokeContract[OperatorOfQueryParams, OperatorOfQueryResponse](
			ctx, c, tokenContract, OperatorOfEntrypointName, params,
		)
	}

	resp, err := clientCallWithRetry(ctx, callForOperatorOf, c.cfg)
	if err != nil {
		return false, mapInvokeError(err)
	}
	if len(*resp) == 0 {
		return false, types.NewErrorWithMsg(
			http.StatusBadGateway,
			types.InvokeContractError,
			fmt.Sprintf("operatorOf on %s returned no result", tokenContract),
		)
	}
	return (*resp)[0], nil
}

func (c *Client) HasBalance(
	ctx context.Context,
	tokenID types.TokenID,
	tokenContract types.ContractAddress,
	amount uint64,
	owner types.AccountAddress,
) (bool, error) {
	params := &BalanceOfQueryParams{
		Queries: []BalanceOfQuery{{
			TokenID: tokenID,
			Address: owner.String(),
		}},
	}

	callForBalanceOf := func() (*BalanceOfQueryResponse, error) {
		return invokeContract[BalanceOfQueryParams, BalanceOfQueryResponse](
			ctx, c, tokenContract, BalanceOfEntrypointName, params,
		)
	}

	resp, err := clientCallWithRetry(ctx, callForBalanceOf, c.cfg)
	if err != nil {
		return false, mapInvokeError(err)
	}
	if len(*resp) == 0 {
		return false, types.NewErrorWithMsg(
			http.StatusBadGateway,
			types.InvokeContractError,
			fmt.Sprintf("balanceOf on %s returned no result", tokenContract),
		)
	}

	balance, err := strconv.ParseUint((*resp)[0], 10, 64)
	if err != nil {
		return false, types.NewError(
			http.StatusBadGateway,
			types.ParseResult,
			fmt.Errorf("balanceOf on %s returned a non-numeric amount: %w", tokenContract, err),
		)
	}
	return balance >= amount, nil
}

// Transfer is deliberately not retried: the host does not deduplicate
// transfer instructions, and a repeated payout cannot be reconciled by
// this module.
func (c *Client) Transfer(
	ctx context.Context,
	tokenID types.TokenID,
	tokenContract types.ContractAddress,
	amount uint64,
	from types.AccountAddress,
	to types.AccountAddress,
) error {
	params := &TransferParams{{
		TokenID: tokenID,
		Amount:  strconv.FormatUint(amount, 10),
		From:    from.String(),
		To:      to.String(),
		Data:    "",
	}}

	_, err := invokeContract[TransferParams, TransferResponse](
		ctx, c, tokenContract, TransferEntrypointName, params,
	)
	if err != nil {
		return mapInvokeError(err)
	}
	return nil
}

// invokeContract dispatches one entry point invocation and decodes the
// single typed response.
func invokeContract[I any, R any](
	ctx context.Context,
	c *Client,
	contract types.ContractAddress,
	entrypointName string,
	params *I,
) (*R, error) {
	opts := &client.HttpClientOptions{
		Path: fmt.Sprintf(
			"/v1/contracts/%d/%d/invoke/%s",
			contract.Index, contract.Subindex, entrypointName,
		),
		TemplatePath: invokeTemplatePath,
	}
	return client.SendRequest[I, R](ctx, c, http.MethodPost, opts, params)
}

// mapInvokeError translates transport-layer failures into the protocol's
// flat error codes: dispatch failures and empty replies are
// INVOKE_CONTRACT_ERROR, undecodable replies are PARSE_RESULT.
func mapInvokeError(err error) *types.Error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return typed
	}
	var decodeErr *client.DecodeError
	if errors.As(err, &decodeErr) {
		return types.NewError(http.StatusBadGateway, types.ParseResult, err)
	}
	return types.NewError(http.StatusBadGateway, types.InvokeContractError, err)
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[*T],
	cfg *config.TokenConfig,
) (*T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// decode failures are deterministic, retrying cannot help
			var decodeErr *client.DecodeError
			return !errors.As(err, &decodeErr)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("token contract invocation failed, retrying with exponential backoff")
		}))
	if err != nil {
		return nil, err
	}
	return result, nil
}
