package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/document"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/internal/utils"
	"github.com/MKhiriev/go-config-gen/models"
	"github.com/go-resty/resty/v2"
)

const (
	kvPath       = "/v1/kv/{key}"
	tokenHeader  = "X-Consul-Token"
	datacenterQP = "dc"
)

// kvPair is one entry of the array returned by GET /v1/kv/{key}.
// Only the fields the generator needs are decoded.
type kvPair struct {
	Key   string  `json:"Key"`
	Value *string `json:"Value"`
}

type consulSource struct {
	client *utils.HTTPClient

	token      string
	datacenter string

	logger *logger.Logger
}

// NewConsulSource constructs a [ModuleSource] backed by the Consul K/V HTTP API.
// It builds the base URL from cfg.Protocol, cfg.Address and cfg.Port (an
// address that already carries a scheme is used verbatim) and
// configures timeout and retry policy on the underlying HTTP client. Server
// errors and transport failures are retried; 4xx responses are not.
//
// Returns an error if the resulting address cannot be parsed as a URL.
func NewConsulSource(cfg config.Consul, logger *logger.Logger) (ModuleSource, error) {
	baseURL, err := normalizeBaseURL(cfg.Protocol, cfg.Address, cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConsulConfig, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitTime).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || (resp != nil && resp.StatusCode() >= http.StatusInternalServerError)
		})

	return &consulSource{
		client:     client,
		token:      strings.TrimSpace(cfg.Token),
		datacenter: cfg.Datacenter,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(protocol, address string, port int) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("empty address")
	}

	raw := address
	if !strings.Contains(raw, "://") {
		if protocol == "" {
			protocol = "http"
		}
		if port > 0 {
			raw = net.JoinHostPort(strings.Trim(raw, "[]"), strconv.Itoa(port))
		}
		raw = protocol + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [ModuleSource]. It GETs /v1/kv/{moduleName} and decodes
// the Value of the first entry as base64-encoded UTF-8 JSON.
func (c *consulSource) Fetch(ctx context.Context, moduleName string) (*models.Node, error) {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetRawPathParam("key", moduleName)
	if c.token != "" {
		req.SetHeader(tokenHeader, c.token)
	}
	if c.datacenter != "" {
		req.SetQueryParam(datacenterQP, c.datacenter)
	}

	resp, err := req.Get(kvPath)
	if err != nil {
		return nil, fmt.Errorf("fetch module %s: %w", moduleName, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("fetch module %s: %w", moduleName, err)
	}

	c.logger.Debug().
		Str("module", moduleName).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Int("size", len(resp.Body())).
		Msg("fetched module from consul")

	node, err := decodeEnvelope(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", moduleName, err)
	}
	return node, nil
}

func decodeEnvelope(body []byte) (*models.Node, error) {
	var pairs []kvPair
	if err := json.Unmarshal(body, &pairs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedEnvelope)
	}
	if pairs[0].Value == nil {
		return nil, fmt.Errorf("%w: key %s has no value", ErrMalformedEnvelope, pairs[0].Key)
	}

	raw, err := base64.StdEncoding.DecodeString(*pairs[0].Value)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrMalformedEnvelope, err)
	}

	node, err := document.ParseBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if node.Kind != models.KindObject {
		return nil, fmt.Errorf("%w: %w: got %s", ErrMalformedEnvelope, ErrModuleNotObject, node.Kind)
	}

	return node, nil
}
