package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kernel/kit/internal/keystore"
	"github.com/kernel/kit/pkg/api"
	"github.com/kernel/kit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Poster sends JSON to the kit backend.
type Poster interface {
	Post(ctx context.Context, endpoint string, data any, token string) (*api.Response, error)
}

// PostCmd handles raw API posts.
type PostCmd struct {
	client Poster
}

// PostInput holds input for a POST.
type PostInput struct {
	Endpoint string
	Data     string
	Token    string
	Get      string
}

// Post sends in.Data to in.Endpoint and prints the response body, or the
// value at the gjson path in.Get.
func (c PostCmd) Post(ctx context.Context, in PostInput) error {
	data := in.Data
	if data == "" {
		data = "{}"
	}
	if !json.Valid([]byte(data)) {
		return fmt.Errorf("--data must be valid JSON")
	}

	resp, err := c.client.Post(ctx, in.Endpoint, json.RawMessage(data), in.Token)
	if err != nil {
		printPostError(err)
		return err
	}

	if in.Get != "" {
		v := resp.Get(in.Get)
		if !v.Exists() {
			return fmt.Errorf("path %q not found in response", in.Get)
		}
		if v.IsObject() || v.IsArray() {
			return util.PrintPrettyJSON(json.RawMessage(v.Raw))
		}
		pterm.Println(v.String())
		return nil
	}
	return util.PrintPrettyJSON(resp.Body)
}

func printPostError(err error) {
	var (
		statusErr    *api.StatusError
		serverErr    *api.ServerError
		decodeErr    *api.DecodeError
		transportErr *api.TransportError
	)
	switch {
	case errors.As(err, &statusErr):
		pterm.Error.Printf("Request failed with status %d: %s\n", statusErr.Code, statusErr.Msg)
	case errors.As(err, &serverErr):
		pterm.Error.Printf("Server reported an error: %v\n", serverErr.Value)
	case errors.As(err, &decodeErr):
		pterm.Error.Println("Server returned a response that is not JSON")
	case errors.As(err, &transportErr):
		pterm.Error.Printf("Could not reach %s\n", transportErr.URL)
	}
}

var postCmd = &cobra.Command{
	Use:   "post <endpoint>",
	Short: "POST JSON to the kit API",
	Long: `POST a JSON body to an endpoint under the API base URL. The access token is
taken from --token, KIT_ACCESS_TOKEN, or the token saved with 'kit token set'.`,
	Args: cobra.ExactArgs(1),
	RunE: runPost,
}

func init() {
	rootCmd.AddCommand(postCmd)

	postCmd.Flags().StringP("data", "d", "{}", "JSON request body")
	postCmd.Flags().String("token", "", "Access token for this request")
	postCmd.Flags().String("get", "", "Print only the value at this path, e.g. user.name")
}

func newAPIClient(cmd *cobra.Command) (*api.Client, error) {
	cfg := getConfig(cmd)
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("no API base URL: set KIT_API_BASE_URL or pass --api")
	}
	return api.New(cfg.APIBaseURL,
		api.WithHTTPClient(getHTTPClient(cmd)),
		api.WithTokenSource(keystore.TokenSource(cfg.AccessToken)),
		api.WithLogger(getLogger(cmd)),
	), nil
}

func runPost(cmd *cobra.Command, args []string) error {
	data, _ := cmd.Flags().GetString("data")
	token, _ := cmd.Flags().GetString("token")
	get, _ := cmd.Flags().GetString("get")

	client, err := newAPIClient(cmd)
	if err != nil {
		return err
	}
	c := PostCmd{client: client}
	return c.Post(cmd.Context(), PostInput{Endpoint: args[0], Data: data, Token: token, Get: get})
}
