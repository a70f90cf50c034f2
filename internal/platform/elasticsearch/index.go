// File: internal/platform/elasticsearch/index.go
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

const PostsIndexName = "posts"

// PostDocument is the shape indexed for each post.
type PostDocument struct {
	ID           string `json:"id"`
	UniversityID string `json:"university_id"`
	Content      string `json:"content"`
	Type         string `json:"type"`
	CreatedAt    string `json:"created_at"`
}

func postsIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"university_id": {"type": "keyword"},
				"content":       {"type": "text"},
				"type":          {"type": "keyword"},
				"created_at":    {"type": "date"}
			}
		}
	}`
}

// CreatePostsIndexIfNotExists ensures the posts index exists with its mapping.
func CreatePostsIndexIfNotExists(es *ESClientWrapper, logger *zap.Logger) error {
	res, err := es.Indices.Exists([]string{PostsIndexName})
	if err != nil {
		return fmt.Errorf("checking posts index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status checking posts index: %s", res.Status())
	}

	createRes, err := es.Indices.Create(
		PostsIndexName,
		es.Indices.Create.WithBody(strings.NewReader(postsIndexMapping())),
	)
	if err != nil {
		return fmt.Errorf("creating posts index: %w", err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("creating posts index: %s", createRes.Status())
	}
	logger.Info("Elasticsearch posts index created", zap.String("index", PostsIndexName))
	return nil
}

// IndexPost upserts a post document.
func IndexPost(ctx context.Context, es *ESClientWrapper, doc PostDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshalling post document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      PostsIndexName,
		DocumentID: doc.ID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, es)
	if err != nil {
		return fmt.Errorf("indexing post %s: %w", doc.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("indexing post %s: %s", doc.ID, res.Status())
	}
	return nil
}

// DeletePost removes a post document. A missing document is not an error.
func DeletePost(ctx context.Context, es *ESClientWrapper, id string) error {
	req := esapi.DeleteRequest{Index: PostsIndexName, DocumentID: id}
	res, err := req.Do(ctx, es)
	if err != nil {
		return fmt.Errorf("deleting post %s from index: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("deleting post %s from index: %s", id, res.Status())
	}
	return nil
}

// SearchPostIDs runs a match query scoped to a university and returns the
// matching post IDs, newest first.
func SearchPostIDs(ctx context.Context, es *ESClientWrapper, universityID, query string, size int) ([]string, error) {
	searchBody := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"match": map[string]interface{}{"content": query},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"university_id": universityID},
				},
			},
		},
		"sort": []map[string]interface{}{
			{"created_at": map[string]interface{}{"order": "desc"}},
		},
		"size": size,
	}

	body, err := json.Marshal(searchBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling search body: %w", err)
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(PostsIndexName),
		es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("searching posts: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("searching posts: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
