package redisfactory

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Factory owns the redis connections of the service. A connection whose URI is
// empty is not created and its getter returns nil.
type Factory struct {
	responsesCache *redis.Client
}

func newClient(uri string) (*redis.Client, error) {
	if uri == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt), nil
}

func New(responsesCacheURI string) (*Factory, error) {
	responsesCache, err := newClient(responsesCacheURI)
	if err != nil {
		return nil, err
	}

	return &Factory{
		responsesCache: responsesCache,
	}, nil
}

func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}

func (f *Factory) Close() error {
	if f.responsesCache == nil {
		return nil
	}

	return f.responsesCache.Close()
}
