// Package batch analyses many receipt texts at once, in parallel when the
// batch is large enough to benefit from it.
package batch

import (
	"context"
	"runtime"
	"sync"

	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"
)

// SequentialThreshold is the batch size below which documents are analysed
// on the calling goroutine.
const SequentialThreshold = 16

// Analyzer turns receipt text into an analysis record.
type Analyzer interface {
	AnalyzeText(text string, ocrConfidence *float64) models.ReceiptAnalysis
}

// Document is one receipt text to analyse.
type Document struct {
	Source string
	Text   string
}

// Item is the analysis of one Document.
type Item struct {
	Source   string
	Analysis models.ReceiptAnalysis
}

// Processor runs an Analyzer over a batch of documents, preserving order.
type Processor struct {
	analyzer    Analyzer
	logger      logging.Logger
	workerCount int
}

// NewProcessor creates a Processor with one worker per CPU.
func NewProcessor(analyzer Analyzer, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Processor{
		analyzer:    analyzer,
		logger:      logger,
		workerCount: runtime.NumCPU(),
	}
}

// Process analyses every document. Results are in input order. It returns the
// context error if ctx is cancelled before all documents are done.
func (p *Processor) Process(ctx context.Context, docs []Document) ([]Item, error) {
	if len(docs) < SequentialThreshold || p.workerCount < 2 {
		return p.processSequential(ctx, docs)
	}
	return p.processConcurrent(ctx, docs)
}

func (p *Processor) processSequential(ctx context.Context, docs []Document) ([]Item, error) {
	items := make([]Item, 0, len(docs))
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items = append(items, p.analyze(doc))
	}
	return items, nil
}

type job struct {
	index int
	doc   Document
}

type indexedItem struct {
	index int
	item  Item
}

func (p *Processor) processConcurrent(ctx context.Context, docs []Document) ([]Item, error) {
	jobs := make(chan job, p.workerCount)
	results := make(chan indexedItem, len(docs))

	var wg sync.WaitGroup
	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go p.worker(ctx, &wg, jobs, results)
	}

	go func() {
		defer close(jobs)
		for i, doc := range docs {
			select {
			case jobs <- job{index: i, doc: doc}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	items := make([]Item, len(docs))
	done := 0
	for result := range results {
		items[result.index] = result.item
		done++
	}

	if err := ctx.Err(); err != nil && done < len(docs) {
		return nil, err
	}

	p.logger.Debug("Concurrent batch completed",
		logging.Field{Key: logging.FieldCount, Value: len(docs)},
		logging.Field{Key: "workers", Value: p.workerCount})

	return items, nil
}

func (p *Processor) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan job, results chan<- indexedItem) {
	defer wg.Done()

	for {
		select {
		case j, ok := <-jobs:
			if !ok {
				return
			}
			results <- indexedItem{index: j.index, item: p.analyze(j.doc)}
		case <-ctx.Done():
			return
		}
	}
}

func (p *Processor) analyze(doc Document) Item {
	return Item{Source: doc.Source, Analysis: p.analyzer.AnalyzeText(doc.Text, nil)}
}

// Summaries flattens items into export rows.
func Summaries(items []Item) []models.AnalysisSummary {
	rows := make([]models.AnalysisSummary, 0, len(items))
	for _, item := range items {
		rows = append(rows, item.Analysis.Summary(item.Source))
	}
	return rows
}
