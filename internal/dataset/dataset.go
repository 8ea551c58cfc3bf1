// internal/dataset/dataset.go

// Package dataset fetches news articles used as experiment material.
package dataset

import "context"

// Article is one externally sourced article.
type Article struct {
	Index   int
	Content string
}

// Source is an indexable collection of articles.
type Source interface {
	// Articles returns up to count articles starting at offset, in index order.
	Articles(ctx context.Context, offset, count int) ([]Article, error)
}

// Batch is the material for one experiment batch: prior articles used as
// history and the article the cursor is placed in.
type Batch struct {
	History []string
	Test    Article
}

// BatchSize is the number of articles consumed per batch.
const BatchSize = 4

// LoadBatch fetches the batch at index b: articles b*4 .. b*4+2 become history
// and article b*4+3 is the test article.
func LoadBatch(ctx context.Context, src Source, b int) (Batch, error) {
	offset := b * BatchSize
	articles, err := src.Articles(ctx, offset, BatchSize)
	if err != nil {
		return Batch{}, err
	}
	var batch Batch
	for _, a := range articles {
		if a.Index == offset+BatchSize-1 {
			batch.Test = a
			continue
		}
		batch.History = append(batch.History, a.Content)
	}
	return batch, nil
}
