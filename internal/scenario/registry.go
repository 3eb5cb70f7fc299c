package scenario

import (
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// Registry fetches published vintage rates from a remote forecast service.
// Responses are cached per vintage name for the life of the process; any
// fetch error falls back to the caller-provided defaults.
type Registry struct {
	baseURL string
	client  *http.Client
	cache   sync.Map
}

func NewRegistry(baseURL string) *Registry {
	return &Registry{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Vintage returns the remote rates for the named vintage, or fallback when
// the registry cannot serve them.
func (r *Registry) Vintage(name string, fallback Vintage) Vintage {
	if cached, ok := r.cache.Load(name); ok {
		return cached.(Vintage)
	}

	v, ok := r.fetch(name, fallback)
	if !ok {
		// Errors are not cached so a recovered registry is picked up.
		return fallback
	}
	r.cache.Store(name, v)
	return v
}

// Resolve refreshes both official vintages of cfg through the registry.
func (r *Registry) Resolve(cfg Config) Config {
	cfg.Earlier = r.Vintage(cfg.Earlier.Name, cfg.Earlier)
	cfg.Later = r.Vintage(cfg.Later.Name, cfg.Later)
	return cfg
}

func (r *Registry) fetch(name string, fallback Vintage) (Vintage, bool) {
	resp, err := r.client.Get(r.baseURL + "/vintages/" + name)
	if err != nil {
		return fallback, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fallback, false
	}

	v := fallback
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return fallback, false
	}
	v.Name = name
	return v, true
}
