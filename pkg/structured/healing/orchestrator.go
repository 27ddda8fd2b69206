package healing

// ABOUTME: Bounded healing state machine for malformed structured output
// ABOUTME: ParseAttempt then up to MaxAttempts heal rounds through an injected healer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/estiens/open-router-enhanced-sub001/pkg/config"
	llmDomain "github.com/estiens/open-router-enhanced-sub001/pkg/llm/domain"
	schemaDomain "github.com/estiens/open-router-enhanced-sub001/pkg/schema/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/structured/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/structured/processor"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/json"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/logging"
)

// DefaultMaxAttempts is the heal-round ceiling when none is configured.
const DefaultMaxAttempts = 2

// Orchestrator resolves malformed structured-output payloads by issuing
// bounded repair rounds through an injected healer executor.
//
// The orchestrator is stateless between sessions: every Resolve call is
// independent, holds no memory of prior payloads, and is safe to run
// concurrently with other calls on the same instance.
type Orchestrator struct {
	healer      llmDomain.CompletionExecutor
	healerModel string
	validator   schemaDomain.Validator
	maxAttempts int
	mode        domain.Mode
	enabled     bool
	logger      zerolog.Logger
	observers   []domain.Observer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithValidator attaches a schema validator. Without one (or with one whose
// Available reports false), parseability is the only healing signal.
func WithValidator(v schemaDomain.Validator) Option {
	return func(o *Orchestrator) {
		o.validator = v
	}
}

// WithMaxAttempts sets the heal-round ceiling. Zero disables healing while
// still allowing the first-parse fast path.
func WithMaxAttempts(n int) Option {
	return func(o *Orchestrator) {
		if n >= 0 {
			o.maxAttempts = n
		}
	}
}

// WithMode sets the terminal failure mode. The default is strict.
func WithMode(mode domain.Mode) Option {
	return func(o *Orchestrator) {
		o.mode = mode
	}
}

// WithHealingDisabled turns off heal rounds entirely, regardless of the
// attempt ceiling. The first-parse path still works.
func WithHealingDisabled() Option {
	return func(o *Orchestrator) {
		o.enabled = false
	}
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithObserver registers a callback for healing events. Observers run
// synchronously after a session resolves through the healer.
func WithObserver(obs domain.Observer) Option {
	return func(o *Orchestrator) {
		o.observers = append(o.observers, obs)
	}
}

// New creates an orchestrator that heals through the given executor and
// model.
func New(healer llmDomain.CompletionExecutor, healerModel string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		healer:      healer,
		healerModel: healerModel,
		maxAttempts: DefaultMaxAttempts,
		mode:        domain.ModeStrict,
		enabled:     true,
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewFromConfig creates an orchestrator wired from environment-driven
// configuration, plus any overriding options.
func NewFromConfig(healer llmDomain.CompletionExecutor, cfg config.Config, opts ...Option) *Orchestrator {
	base := []Option{WithMaxAttempts(cfg.MaxHealAttempts)}
	if cfg.StructuredOutputMode == "gentle" {
		base = append(base, WithMode(domain.ModeGentle))
	}
	if !cfg.AutoHealResponses {
		base = append(base, WithHealingDisabled())
	}
	return New(healer, cfg.HealerModel, append(base, opts...)...)
}

// parseOutcome is the result of one ParseAttempt.
type parseOutcome struct {
	data             map[string]interface{}
	extracted        string
	parseErr         error
	validationErrors []string
}

func (p parseOutcome) valid() bool {
	return p.parseErr == nil && len(p.validationErrors) == 0
}

// Resolve runs one healing session over payload. A payload that parses (and
// validates, when a schema and validator are present) returns immediately
// with zero healer calls. Otherwise up to MaxAttempts heal rounds run; the
// ceiling is hard. Terminal failure returns a StructuredOutputError in
// strict mode and (nil, nil) in gentle mode.
//
// Context cancellation during a heal round aborts the session with the
// cancellation error in both modes: cancellation is not a healing failure
// and is never converted to a gentle nil.
func (o *Orchestrator) Resolve(ctx context.Context, payload string, schema *schemaDomain.Schema) (map[string]interface{}, error) {
	outcome := o.parseAttempt(payload, schema)
	if outcome.valid() {
		return outcome.data, nil
	}

	session := uuid.NewString()
	log := o.logger.With().Str("session_id", session).Logger()
	log.Debug().
		Err(outcome.parseErr).
		Strs("validation_errors", outcome.validationErrors).
		Msg("structured output needs healing")

	attempts := 0
	if o.enabled {
		for attempts < o.maxAttempts {
			attempts++

			healed, healOutcome, err := o.healRound(ctx, payload, schema, outcome)
			if err != nil {
				// Cancellation or timeout from the healer executor ends the
				// session immediately; retrying a dead context is pointless.
				return nil, err
			}
			if healed {
				content := healOutcome.extracted
				o.emit(domain.HealingEvent{
					SessionID:     session,
					Healed:        true,
					Attempts:      attempts,
					Original:      payload,
					HealedContent: &content,
				})
				log.Debug().Int("attempts", attempts).Msg("structured output healed")
				return healOutcome.data, nil
			}
			outcome = healOutcome
		}
	}

	o.emit(domain.HealingEvent{
		SessionID: session,
		Healed:    false,
		Attempts:  attempts,
		Original:  payload,
	})
	log.Warn().Int("attempts", attempts).Msg("structured output healing exhausted")

	if o.mode == domain.ModeGentle {
		return nil, nil
	}
	return nil, &domain.StructuredOutputError{
		Attempts:         attempts,
		RawContent:       payload,
		ValidationErrors: outcome.validationErrors,
		Cause:            outcome.parseErr,
	}
}

// healRound issues one repair request and parses the result. The non-nil
// error return is reserved for context cancellation; transport failures
// count as a failed round and surface through the outcome instead.
func (o *Orchestrator) healRound(ctx context.Context, payload string, schema *schemaDomain.Schema, prior parseOutcome) (bool, parseOutcome, error) {
	prompt, err := processor.BuildRepairPrompt(payload, schema, prior.validationErrors)
	if err != nil {
		return false, parseOutcome{parseErr: err}, nil
	}

	messages := []llmDomain.Message{
		llmDomain.NewSystemMessage(processor.RepairSystemPrompt),
		llmDomain.NewUserMessage(prompt),
	}

	resp, err := o.healer.Execute(ctx, messages, o.healerModel,
		llmDomain.WithTemperature(0),
		llmDomain.WithJSONOnly(),
	)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return false, parseOutcome{}, err
		}
		return false, parseOutcome{parseErr: fmt.Errorf("%w: %v", llmDomain.ErrRequestFailed, err)}, nil
	}

	outcome := o.parseAttempt(resp.Content, schema)
	return outcome.valid(), outcome, nil
}

// parseAttempt extracts and parses JSON from raw content, then validates it
// against the schema when both a schema and an available validator exist.
// Validator absence means validity is unknown, not invalid: parseability
// remains the primary signal.
func (o *Orchestrator) parseAttempt(raw string, schema *schemaDomain.Schema) parseOutcome {
	extracted := processor.ExtractJSON(raw)
	if extracted == "" {
		extracted = raw
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(extracted), &data); err != nil {
		return parseOutcome{parseErr: fmt.Errorf("%w: %v", llmDomain.ErrInvalidJSON, err)}
	}

	if schema != nil && o.validator != nil && o.validator.Available() {
		result, err := o.validator.Validate(schema, extracted)
		if err == nil && !result.Valid {
			return parseOutcome{
				data:             data,
				extracted:        extracted,
				validationErrors: result.Errors,
			}
		}
	}

	return parseOutcome{data: data, extracted: extracted}
}

// emit delivers the event to observers and the log.
func (o *Orchestrator) emit(event domain.HealingEvent) {
	for _, obs := range o.observers {
		obs(event)
	}
}
