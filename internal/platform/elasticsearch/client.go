// File: internal/platform/elasticsearch/client.go
package elasticsearch

import (
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"

	"uniconnect_backend/internal/config"
)

// ESClientWrapper wraps the elasticsearch.Client so Wire can disambiguate the
// type. A nil wrapper means Elasticsearch is not configured and callers must
// fall back to database search.
type ESClientWrapper struct {
	*elasticsearch.Client
}

// zapTransportLogger adapts zap.Logger to elastictransport.Logger.
type zapTransportLogger struct {
	logger *zap.Logger
}

func (l *zapTransportLogger) LogRoundTrip(req *http.Request, res *http.Response, err error, start time.Time, dur time.Duration) error {
	statusCode := 0
	if res != nil {
		statusCode = res.StatusCode
	}
	l.logger.Debug("Elasticsearch round trip",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", dur),
		zap.Error(err),
	)
	return nil
}

func (l *zapTransportLogger) RequestBodyEnabled() bool  { return false }
func (l *zapTransportLogger) ResponseBodyEnabled() bool { return false }

// NewClient creates a new Elasticsearch client wrapper. Returns (nil, nil)
// when no URL is configured; post search then degrades to SQL contains-search.
func NewClient(cfg *config.Config, logger *zap.Logger) (*ESClientWrapper, error) {
	if cfg.ElasticsearchURL == "" {
		logger.Info("ELASTICSEARCH_URL not set, post search will use the database")
		return nil, nil
	}

	esCfg := elasticsearch.Config{
		Addresses:     []string{cfg.ElasticsearchURL},
		Logger:        &zapTransportLogger{logger: logger.Named("elasticsearch_client")},
		RetryOnStatus: []int{502, 503, 504, 429},
		RetryBackoff: func(i int) time.Duration {
			return time.Duration(i) * 100 * time.Millisecond
		},
		MaxRetries: 5,
	}

	esClient, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch.NewClient: %w", err)
	}

	res, err := esClient.Info()
	if err != nil {
		return nil, fmt.Errorf("esClient.Info: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch client initialization error: %s", res.Status())
	}

	logger.Info("Elasticsearch client initialized",
		zap.String("url", cfg.ElasticsearchURL),
		zap.String("es_version", elasticsearch.Version),
	)
	return &ESClientWrapper{Client: esClient}, nil
}
