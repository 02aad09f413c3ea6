package es

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/goccy/go-json"
)

const MaxSearchSize = 200

type PostRepo interface {
	SearchPrefix(ctx context.Context, terms []string) ([]uint64, error)
	IndexPost(ctx context.Context, post *PostES) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewPostRepo(client *elasticsearch.TypedClient) PostRepo {
	return &PostRepoImpl{client: client}
}

// SearchPrefix 多词检索：每个词在标题或正文上做前缀匹配，词间 AND
func (s *PostRepoImpl) SearchPrefix(ctx context.Context, terms []string) ([]uint64, error) {
	must := make([]types.Query, 0, len(terms))
	for _, term := range terms {
		lowered := strings.ToLower(term)
		must = append(must, types.Query{
			Bool: &types.BoolQuery{
				Should: []types.Query{
					{Prefix: map[string]types.PrefixQuery{"title": {Value: lowered}}},
					{Prefix: map[string]types.PrefixQuery{"caption": {Value: lowered}}},
				},
			},
		})
	}

	res, err := s.client.Search().
		Index(PostIndex).
		Size(MaxSearchSize).
		Query(&types.Query{Bool: &types.BoolQuery{Must: must}}).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc PostES
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			continue
		}
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func (s *PostRepoImpl) IndexPost(ctx context.Context, post *PostES) error {
	docID := strconv.FormatUint(post.ID, 10)

	_, err := s.client.Index(PostIndex).
		Id(docID).
		Document(post).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(PostIndex, docID).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}
