package amtraker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/railboard/railboard/pkg/util"
)

const defaultBaseURL = "https://api-v3.amtraker.com/v3"

// Client talks to the Amtraker v3 API. Transport and parse failures surface
// as errors for the caller to retry or report, the client never hides them.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: util.GetEnvironmentVariable("RAILBOARD_AMTRAKER_URL", defaultBaseURL),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchStation returns station identity plus the IDs of trains currently
// serving it.
func (client *Client) FetchStation(ctx context.Context, stationCode string) (*Station, error) {
	var response map[string]Station

	if err := client.getJSON(ctx, fmt.Sprintf("%s/stations/%s", client.BaseURL, stationCode), &response); err != nil {
		return nil, err
	}

	station, found := response[stationCode]
	if !found {
		return nil, fmt.Errorf("station %s missing from provider response", stationCode)
	}

	return &station, nil
}

// FetchTrain returns the full ordered stop list for a train. The provider
// keys the response by train number with an array per key, so the entry with
// a matching train ID has to be picked out.
func (client *Client) FetchTrain(ctx context.Context, trainID string) (*Train, error) {
	var response map[string][]Train

	if err := client.getJSON(ctx, fmt.Sprintf("%s/trains/%s", client.BaseURL, trainID), &response); err != nil {
		return nil, err
	}

	for _, trains := range response {
		for _, train := range trains {
			if train.TrainID == trainID {
				return &train, nil
			}
		}
	}

	return nil, fmt.Errorf("train %s missing from provider response", trainID)
}

func (client *Client) getJSON(ctx context.Context, url string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := client.HTTPClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: HTTP %d", url, response.StatusCode)
	}

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}

	return nil
}

// retryBackoff is the retry policy for flaky provider fetches. Kept short,
// the display refreshes often enough that giving up quickly is fine.
func retryBackoff(ctx context.Context) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = 500 * time.Millisecond
	exponential.MaxElapsedTime = 15 * time.Second

	return backoff.WithContext(backoff.WithMaxRetries(exponential, 3), ctx)
}
