// Package inpost implements the parcel-machine API client over HTTP.
package inpost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"boxbot/config"
	"boxbot/internal/domain/entity"
	"boxbot/internal/domain/service"

	"github.com/pkg/errors"
)

type client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the parcel-machine API client. Requests are never
// retried here: the workflow treats every upstream failure as terminal for
// the current conversation, so retry policy belongs to the caller, not the
// transport.
func NewClient(cfg *config.Config, logger *slog.Logger) service.ParcelClient {
	return &client{
		baseURL: cfg.ParcelAPI.BaseURL,
		token:   cfg.ParcelAPI.Token,
		httpClient: &http.Client{
			Timeout: cfg.ParcelAPI.Timeout,
		},
		logger: logger,
	}
}

// FetchParcels retrieves all parcels visible to the phone-number identity.
func (c *client) FetchParcels(ctx context.Context, phoneNumber string, parcelType entity.ParcelType) ([]*entity.Parcel, error) {
	endpoint := fmt.Sprintf("%s/v1/parcels?shipmentType=%s", c.baseURL, url.QueryEscape(string(parcelType)))

	body, err := c.do(ctx, http.MethodGet, endpoint, phoneNumber, nil)
	if err != nil {
		return nil, err
	}

	return decodeParcelList(body)
}

// FetchParcel retrieves a single parcel by shipment number.
func (c *client) FetchParcel(ctx context.Context, phoneNumber, shipmentNumber string, parcelType entity.ParcelType) (*entity.Parcel, error) {
	endpoint := fmt.Sprintf("%s/v1/parcels/%s?shipmentType=%s",
		c.baseURL, url.PathEscape(shipmentNumber), url.QueryEscape(string(parcelType)))

	body, err := c.do(ctx, http.MethodGet, endpoint, phoneNumber, nil)
	if err != nil {
		return nil, err
	}

	return decodeParcel(body)
}

// FetchGroup retrieves the full sibling set of a multicompartment group.
func (c *client) FetchGroup(ctx context.Context, phoneNumber, groupID string) ([]*entity.Parcel, error) {
	endpoint := fmt.Sprintf("%s/v1/multicompartments/%s", c.baseURL, url.PathEscape(groupID))

	body, err := c.do(ctx, http.MethodGet, endpoint, phoneNumber, nil)
	if err != nil {
		return nil, err
	}

	return decodeParcelList(body)
}

// Unlock opens the compartment holding the parcel and returns the refreshed
// snapshot carrying the compartment location.
func (c *client) Unlock(ctx context.Context, phoneNumber string, parcel *entity.Parcel) (*entity.Parcel, error) {
	endpoint := fmt.Sprintf("%s/v1/parcels/%s/open", c.baseURL, url.PathEscape(parcel.ShipmentNumber))

	payload, err := json.Marshal(map[string]string{
		"openCode": parcel.OpenCode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode open request")
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, phoneNumber, payload)
	if err != nil {
		return nil, err
	}

	opened, err := decodeParcel(body)
	if err != nil {
		return nil, err
	}
	if opened == nil {
		return nil, errors.Wrap(service.ErrUpstreamAPI, "open returned an empty parcel")
	}

	return opened, nil
}

// FetchFriends lists the contacts the shipment can be shared with.
func (c *client) FetchFriends(ctx context.Context, phoneNumber, shipmentNumber string) ([]*entity.Friend, error) {
	endpoint := fmt.Sprintf("%s/v1/parcels/%s/friends", c.baseURL, url.PathEscape(shipmentNumber))

	body, err := c.do(ctx, http.MethodGet, endpoint, phoneNumber, nil)
	if err != nil {
		return nil, err
	}

	return decodeFriendList(body)
}

// Share grants a friend access to the shipment.
func (c *client) Share(ctx context.Context, phoneNumber, shipmentNumber, friendID string) error {
	endpoint := fmt.Sprintf("%s/v1/parcels/%s/share", c.baseURL, url.PathEscape(shipmentNumber))

	payload, err := json.Marshal(map[string]string{
		"friendUuid": friendID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode share request")
	}

	_, err = c.do(ctx, http.MethodPost, endpoint, phoneNumber, payload)

	return err
}

// do executes one request and maps upstream failures to the client's
// sentinel errors.
func (c *client) do(ctx context.Context, method, endpoint, phoneNumber string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Phone-Number", phoneNumber)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(service.ErrUpstreamAPI, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(service.ErrUpstreamAPI, "failed to read response body")
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, service.ErrNotAuthenticated
	case resp.StatusCode == http.StatusNotFound:
		return nil, service.ErrParcelNotFound
	default:
		c.logger.Warn("parcel-machine API error",
			slog.String("method", method),
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Wrapf(service.ErrUpstreamAPI, "unexpected status %d", resp.StatusCode)
	}
}

func decodeParcel(body []byte) (*entity.Parcel, error) {
	var dto parcelDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, errors.Wrap(service.ErrUpstreamAPI, "failed to decode parcel")
	}

	return toParcelDomain(&dto, body), nil
}

func decodeFriendList(body []byte) ([]*entity.Friend, error) {
	var list struct {
		Friends []friendDTO `json:"friends"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(service.ErrUpstreamAPI, "failed to decode friend list")
	}

	friends := make([]*entity.Friend, 0, len(list.Friends))
	for _, dto := range list.Friends {
		friends = append(friends, &entity.Friend{
			ID:          dto.UUID,
			Name:        dto.Name,
			PhoneNumber: dto.PhoneNumber,
		})
	}

	return friends, nil
}

func decodeParcelList(body []byte) ([]*entity.Parcel, error) {
	// Each list item keeps its own raw bytes so the archive stores exactly
	// what the API said about that one shipment.
	var list struct {
		Parcels []json.RawMessage `json:"parcels"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(service.ErrUpstreamAPI, "failed to decode parcel list")
	}

	parcels := make([]*entity.Parcel, 0, len(list.Parcels))
	for _, raw := range list.Parcels {
		var dto parcelDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, errors.Wrap(service.ErrUpstreamAPI, "failed to decode parcel")
		}

		parcels = append(parcels, toParcelDomain(&dto, raw))
	}

	return parcels, nil
}
