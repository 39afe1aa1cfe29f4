// internal/history/elastic.go
package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	commonerrors "marketing-advisor/internal/common/errors"
)

// ElasticSink indexes every history record into Elasticsearch so reports
// become searchable. It is a write-only sink layered next to the primary
// store via MultiSink.
type ElasticSink struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticSink(client *elasticsearch.Client, index string) *ElasticSink {
	return &ElasticSink{client: client, index: index}
}

func (s *ElasticSink) Append(ctx context.Context, record Record) error {
	body, err := json.Marshal(record)
	if err != nil {
		return commonerrors.NewHistoryAppendFailedError("elasticsearch", err)
	}

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(body),
		s.client.Index.WithDocumentID(record.ID),
		s.client.Index.WithContext(ctx),
	)
	if err != nil {
		return commonerrors.NewHistoryAppendFailedError("elasticsearch", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return commonerrors.NewHistoryAppendFailedError(
			"elasticsearch", fmt.Errorf("index response: %s", res.Status()))
	}

	return nil
}
