package petshopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petshop-console/internal/models"
)

type Options struct {
	BaseURL string
	// Timeout zero mantém o default do transporte.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client fala com o backend REST do pet shop. Cada recurso expõe
// list / get / create / update / delete.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	Customers    *Resource[models.Customer, models.CustomerInput]
	Animals      *Resource[models.Animal, models.AnimalInput]
	Employees    *Resource[models.Employee, models.EmployeeInput]
	Services     *Resource[models.Service, models.ServiceInput]
	Appointments *Resource[models.Appointment, models.AppointmentInput]
}

func New(opts Options) (*Client, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid petshop api url %q", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	c := &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
		log:     log,
	}

	c.Customers = newResource[models.Customer, models.CustomerInput](c, "clientes")
	c.Animals = newResource[models.Animal, models.AnimalInput](c, "animais")
	c.Employees = newResource[models.Employee, models.EmployeeInput](c, "funcionarios")
	c.Services = newResource[models.Service, models.ServiceInput](c, "servicos")
	c.Appointments = newResource[models.Appointment, models.AppointmentInput](c, "agendamentos")

	return c, nil
}

func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
	out any,
) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("petshop api unreachable",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return newTransportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return newTransportError(err)
	}

	c.log.Debug("petshop api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newResponseError(resp.StatusCode, payload)
		c.log.Info("petshop api error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail),
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
