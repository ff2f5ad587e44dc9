package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/Cheertaboi/marketplace-schema/internal/concurrency"
	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

var ErrUnknownEntity = errors.New("unknown entity")

// DecodeError reports a record body that is not a JSON object of the
// entity's shape.
type DecodeError struct {
	Entity string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Entity, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Result is the outcome for one record of a batch.
type Result struct {
	Index      int                       `json:"index"`
	Valid      bool                      `json:"valid"`
	Violations []*models.ConstraintError `json:"violations,omitempty"`
	Error      string                    `json:"error,omitempty"`
}

// Fixture maps an entity name to candidate records, e.g.
// {"shop": [{...}], "order": [{...}]}.
type Fixture map[string][]json.RawMessage

// Report is the batch outcome for one entity of a Fixture.
type Report struct {
	Entity  string   `json:"entity"`
	Results []Result `json:"results"`
}

// Invalid counts records that failed decoding or validation.
func (r Report) Invalid() int {
	n := 0
	for _, res := range r.Results {
		if !res.Valid {
			n++
		}
	}
	return n
}

// ValidationService checks candidate records against the entity rules
// without persisting them.
type ValidationService struct {
	logger  *slog.Logger
	workers int
	timeout time.Duration
	now     func() time.Time
}

type Option func(*ValidationService)

func WithWorkers(n int) Option {
	return func(s *ValidationService) { s.workers = n }
}

func WithClock(now func() time.Time) Option {
	return func(s *ValidationService) { s.now = now }
}

func NewValidationService(logger *slog.Logger, opts ...Option) *ValidationService {
	s := &ValidationService{
		logger:  logger,
		workers: 4,
		timeout: 8 * time.Second,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateRecord decodes raw as the named entity, applies defaults and
// auto-now stamps, then validates it. The prepared entity is returned
// together with any models.ValidationErrors.
func (s *ValidationService) ValidateRecord(ctx context.Context, entity string, raw []byte) (models.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e, ok := models.New(entity)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	if err := json.Unmarshal(raw, e); err != nil {
		return nil, &DecodeError{Entity: entity, Err: err}
	}

	models.Prepare(e, s.now())
	return e, models.Validate(e)
}

// ValidateBatch validates every record on a bounded worker pool. Results
// keep the input order.
func (s *ValidationService) ValidateBatch(ctx context.Context, entity string, raws []json.RawMessage) ([]Result, error) {
	if _, ok := models.New(entity); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}

	// request-scoped deadline for the whole batch
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make([]Result, len(raws))
	concurrency.SimpleWorkerPool(ctx, s.workers, len(raws), func(ctx context.Context, i int) {
		results[i] = s.result(ctx, entity, i, raws[i])
	})

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("validate %s batch: %w", entity, err)
	}

	s.logger.Debug("batch validated", "entity", entity, "records", len(raws))
	return results, nil
}

func (s *ValidationService) result(ctx context.Context, entity string, i int, raw []byte) Result {
	res := Result{Index: i}
	_, err := s.ValidateRecord(ctx, entity, raw)

	var decodeErr *DecodeError
	switch {
	case err == nil:
		res.Valid = true
	case errors.As(err, &decodeErr):
		res.Error = decodeErr.Error()
	case errors.Is(err, models.ErrConstraint):
		res.Violations = models.Violations(err)
	default:
		res.Error = err.Error()
	}
	return res
}

// ValidateFixture runs ValidateBatch for every entity in f, in entity
// name order.
func (s *ValidationService) ValidateFixture(ctx context.Context, f Fixture) ([]Report, error) {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	reports := make([]Report, 0, len(names))
	for _, name := range names {
		results, err := s.ValidateBatch(ctx, name, f[name])
		if err != nil {
			return nil, err
		}
		reports = append(reports, Report{Entity: name, Results: results})
	}
	return reports, nil
}
