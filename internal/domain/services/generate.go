package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/outfitgen/internal/domain/entities"
	"github.com/ersonp/outfitgen/internal/domain/ports"
)

// DefaultWorkers is the number of files read concurrently when no limit is configured.
const DefaultWorkers = 8

// GenerateOptions controls a generation run.
type GenerateOptions struct {
	Workers        int  // Max files read at once (0 = DefaultWorkers)
	SkipUnreadable bool // Log unreadable files instead of failing the run
}

// GenerateResult contains the result of a generation run.
type GenerateResult struct {
	Kind       entities.Kind
	OutputFile string
	Files      int // Script files discovered across all directories
	Entities   int // Records written to the output
	Replaced   int // Records overwritten by a later definition of the same name
	Skipped    []ExtractionSkip
	Dropped    []ports.SerializationSkip
	Unreadable []string
}

// GenerateService runs the discover, extract, merge, serialize and write pipeline.
type GenerateService struct {
	source     ports.ScriptSource
	serializer ports.Serializer
	sink       ports.OutputSink
	log        *zap.Logger
	opts       GenerateOptions
}

// NewGenerateService creates a new generate service.
func NewGenerateService(source ports.ScriptSource, serializer ports.Serializer, sink ports.OutputSink, log *zap.Logger, opts GenerateOptions) *GenerateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GenerateService{
		source:     source,
		serializer: serializer,
		sink:       sink,
		log:        log,
		opts:       opts,
	}
}

// fileOutcome is the extraction result for one discovered file.
type fileOutcome struct {
	record entities.Record
	err    error
}

// Generate scans dirs in order and writes one document of kind to outputFile.
// An empty outputFile means the kind's default file name.
func (s *GenerateService) Generate(ctx context.Context, kind entities.Kind, dirs []string, outputFile string) (*GenerateResult, error) {
	rules, ok := RulesFor(kind)
	if !ok {
		return nil, fmt.Errorf("unsupported kind %q", kind)
	}
	if outputFile == "" {
		outputFile = kind.DefaultOutputFile()
	}

	log := s.log.With(
		zap.String("run_id", uuid.New().String()),
		zap.String("kind", string(kind)),
	)

	extractor := NewExtractor(rules)
	merger := NewMerger()
	result := &GenerateResult{Kind: kind, OutputFile: outputFile}

	for _, dir := range dirs {
		if err := s.mergeDir(ctx, log, extractor, merger, dir, result); err != nil {
			return nil, err
		}
	}

	if merger.Len() == 0 {
		log.Warn("no entities extracted", zap.Int("files", result.Files))
		return nil, fmt.Errorf("no %s found, XML file will not be created: %w", kind.RootTag(), ErrNoEntities)
	}

	records := merger.Records()
	SortByName(records)

	data, dropped, err := s.serializer.Encode(entities.Document{Kind: kind, Records: records})
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", kind.RootTag(), err)
	}
	for _, d := range dropped {
		log.Warn("dropping record from output",
			zap.String("name", d.Name),
			zap.String("key", d.Key),
			zap.String("reason", d.Reason))
	}

	if err := s.sink.Write(ctx, outputFile, data); err != nil {
		return nil, &WriteError{Path: outputFile, Err: err}
	}

	result.Entities = len(records) - len(dropped)
	result.Dropped = dropped

	log.Info("output written",
		zap.String("path", outputFile),
		zap.Int("entities", result.Entities),
		zap.Int("files", result.Files),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// mergeDir extracts every file under dir and folds the records into merger in discovery order.
func (s *GenerateService) mergeDir(ctx context.Context, log *zap.Logger, extractor *Extractor, merger *Merger, dir string, result *GenerateResult) error {
	paths, err := s.source.Discover(ctx, dir)
	if err != nil {
		var de *DiscoveryError
		if errors.As(err, &de) {
			return err
		}
		return &DiscoveryError{Root: dir, Err: err}
	}
	log.Debug("discovered script files", zap.String("dir", dir), zap.Int("files", len(paths)))

	outcomes, err := s.extractAll(ctx, extractor, paths)
	if err != nil {
		return err
	}

	for i, path := range paths {
		out := outcomes[i]

		var skip *ExtractionSkip
		var readErr *ReadError
		switch {
		case errors.As(out.err, &skip):
			skip.Path = path
			result.Skipped = append(result.Skipped, *skip)
			log.Info("skipping file", zap.String("path", path), zap.String("reason", skip.Reason))
		case errors.As(out.err, &readErr):
			result.Unreadable = append(result.Unreadable, path)
			log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(readErr.Err))
		case out.err != nil:
			return out.err
		default:
			rec := out.record
			rec.SourceFile = path
			if prev, replaced := merger.Add(rec); replaced {
				result.Replaced++
				log.Debug("replacing entity",
					zap.String("name", rec.Name),
					zap.String("previous", prev.SourceFile),
					zap.String("path", path))
			}
		}
	}

	result.Files += len(paths)
	return nil
}

// extractAll reads and extracts paths with bounded concurrency.
// Each goroutine owns one slot of the result slice, so the merge afterwards sees discovery order.
func (s *GenerateService) extractAll(ctx context.Context, extractor *Extractor, paths []string) ([]fileOutcome, error) {
	outcomes := make([]fileOutcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for i, path := range paths {
		i, path := i, path // per-iteration copies for Go < 1.22
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := s.source.Read(gctx, path)
			if err != nil {
				readErr := &ReadError{Path: path, Err: err}
				if s.opts.SkipUnreadable {
					outcomes[i] = fileOutcome{err: readErr}
					return nil
				}
				return readErr
			}
			rec, err := extractor.Extract(text)
			outcomes[i] = fileOutcome{record: rec, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (s *GenerateService) workers() int {
	if s.opts.Workers > 0 {
		return s.opts.Workers
	}
	return DefaultWorkers
}
