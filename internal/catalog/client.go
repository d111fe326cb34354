// Package catalog looks up exercises from the ExerciseDB API and falls back
// to the built-in exercise list when the API is unconfigured or unreachable.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
)

const defaultBaseURL = "https://exercisedb.p.rapidapi.com"

// apiExercise is the ExerciseDB wire format.
type apiExercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Equipment        string   `json:"equipment"`
	Target           string   `json:"target"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	GifURL           string   `json:"gifUrl"`
}

// Client is a thin ExerciseDB API client. The zero value is not usable; use
// NewClient.
type Client struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient configures an ExerciseDB client. apiKey is the RapidAPI key.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		apiHost: "exercisedb.p.rapidapi.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// WithBaseURL points the client at a different API host, used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "build request", slog.String("path", path))
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "exercise API request", slog.String("path", path))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "close response body", errors.SlogError(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return errors.New(fmt.Sprintf("exercise API returned status %d for %s", resp.StatusCode, path))
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return errors.Wrap(err, "decode exercise API response", slog.String("path", path))
	}
	return nil
}

func (c *Client) list(ctx context.Context, path string, query url.Values) ([]apiExercise, error) {
	var exercises []apiExercise
	if err := c.get(ctx, path, query, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// ByName searches exercises whose name contains the given string.
func (c *Client) ByName(ctx context.Context, name string) ([]apiExercise, error) {
	return c.list(ctx, "/exercises/name/"+url.PathEscape(name), nil)
}

// ByID fetches a single exercise by its ExerciseDB ID.
func (c *Client) ByID(ctx context.Context, id string) (apiExercise, error) {
	var exercise apiExercise
	err := c.get(ctx, "/exercises/exercise/"+url.PathEscape(id), nil, &exercise)
	return exercise, err
}

// All lists exercises up to limit; limit 0 uses the API default page size.
func (c *Client) All(ctx context.Context, limit int) ([]apiExercise, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return c.list(ctx, "/exercises", query)
}

// ByBodyPart lists exercises for one body part such as "chest" or "back".
func (c *Client) ByBodyPart(ctx context.Context, bodyPart string) ([]apiExercise, error) {
	return c.list(ctx, "/exercises/bodyPart/"+url.PathEscape(bodyPart), nil)
}

// ByTarget lists exercises for one target muscle such as "lats".
func (c *Client) ByTarget(ctx context.Context, target string) ([]apiExercise, error) {
	return c.list(ctx, "/exercises/target/"+url.PathEscape(target), nil)
}

// ByEquipment lists exercises for one equipment kind such as "barbell".
func (c *Client) ByEquipment(ctx context.Context, equipment string) ([]apiExercise, error) {
	return c.list(ctx, "/exercises/equipment/"+url.PathEscape(equipment), nil)
}
