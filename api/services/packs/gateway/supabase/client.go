package supabasegw

import (
	"net/http"
	"strings"

	"github.com/nedpals/supabase-go"
)

// Options configures the hosted backend gateway.
type Options struct {
	URL        string
	AnonKey    string
	ServiceKey string
	// Function is the edge function performing pack changes.
	Function string
	// HTTPClient is used for the edge function call. Nil means http.DefaultClient:
	// the change call gets no timeout beyond the transport's own.
	HTTPClient *http.Client
}

// Gateway talks to Supabase: auth with the anon key, reference and user reads with the
// service key, pack changes through an edge function on behalf of the user.
type Gateway struct {
	opts    Options
	auth    *supabase.Client
	service *supabase.Client
	http    *http.Client
}

func New(opts Options) *Gateway {
	opts.URL = strings.TrimRight(opts.URL, "/")
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	serviceKey := opts.ServiceKey
	if serviceKey == "" {
		serviceKey = opts.AnonKey
	}
	return &Gateway{
		opts:    opts,
		auth:    supabase.CreateClient(opts.URL, opts.AnonKey),
		service: supabase.CreateClient(opts.URL, serviceKey),
		http:    httpClient,
	}
}
