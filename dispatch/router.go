// Package dispatch routes raw JSON messages to typed handlers: it resolves the
// function id through a message registry, binds the payload, gates on
// validity, and delivers the message. Each step is logged and counted.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/reoring/rpcbase"
)

// ErrInvalidMessage is returned, wrapped together with the validation
// Issues, when a bound message fails the validity gate.
var ErrInvalidMessage = errors.New("dispatch: invalid message")

// Options configures a Router.
type Options struct {
	Logger zerolog.Logger
	// Registerer receives the router metrics; nil disables registration.
	Registerer prometheus.Registerer
	// Metrics overrides Registerer when several routers share counters.
	Metrics *Metrics
	// AllowInvalid delivers messages that fail validation instead of
	// rejecting them. The issues are still logged and counted.
	AllowInvalid bool
	// RejectDuplicateKeys fails payloads that repeat a key within one
	// object instead of keeping the last occurrence.
	RejectDuplicateKeys bool
}

// Delivery describes one routed message.
type Delivery[M rpcbase.Message] struct {
	TraceID  string
	Function string
	Message  M
	Issues   rpcbase.Issues
}

// Router delivers the messages of one family (for example the requests of an
// interface). deliver usually calls HandleWith on the message with the host's
// handler.
type Router[M rpcbase.Message] struct {
	registry     *rpcbase.Registry[M]
	deliver      func(ctx context.Context, m M) error
	logger       zerolog.Logger
	metrics      *Metrics
	allowInvalid bool
	rejectDups   bool
}

// NewRouter builds a router over registry.
func NewRouter[M rpcbase.Message](registry *rpcbase.Registry[M], deliver func(ctx context.Context, m M) error, opts Options) *Router[M] {
	m := opts.Metrics
	if m == nil {
		m = NewMetrics(opts.Registerer)
	}
	return &Router[M]{
		registry:     registry,
		deliver:      deliver,
		logger:       opts.Logger.With().Str("kind", registry.Kind().String()).Logger(),
		metrics:      m,
		allowInvalid: opts.AllowInvalid,
		rejectDups:   opts.RejectDuplicateKeys,
	}
}

// Dispatch binds data as the message registered for id and delivers it.
// Unknown ids, malformed JSON, and invalid messages are returned as errors
// (matching rpcbase.ErrUnknownMessageType, rpcbase.Issues with
// CodeParseError, and ErrInvalidMessage respectively) without delivery.
// With RejectDuplicateKeys, repeated keys fail as rpcbase.Issues with
// CodeDuplicate.
func (r *Router[M]) Dispatch(ctx context.Context, id rpcbase.FunctionID, data []byte) (Delivery[M], error) {
	d := Delivery[M]{TraceID: traceID(ctx)}
	log := r.logger.With().Str("trace_id", d.TraceID).Int32("function_id", int32(id)).Logger()

	name, ok := r.registry.Name(id)
	if !ok {
		name = strconv.Itoa(int(id))
		r.count(name, OutcomeUnknown)
		err := &rpcbase.UnknownTypeError{ID: id}
		log.Warn().Err(err).Msg("unknown function id")
		return d, err
	}
	d.Function = name
	log = log.With().Str("function", name).Logger()

	if err := ctx.Err(); err != nil {
		r.count(name, OutcomeCanceled)
		return d, err
	}

	if r.rejectDups {
		if iss := rpcbase.CheckDuplicateKeys(data); iss != nil {
			d.Issues = iss
			r.count(name, OutcomeDuplicateKey)
			log.Warn().Str("first_path", iss[0].Path).Msg("duplicate keys in payload")
			return d, iss
		}
	}

	node, err := rpcbase.ParseJSON(data)
	if err != nil {
		r.count(name, OutcomeParseError)
		log.Warn().Err(err).Msg("malformed payload")
		return d, err
	}
	msg, err := r.registry.NewFromJSON(node, id)
	if err != nil {
		r.count(name, OutcomeUnknown)
		return d, err
	}
	d.Message = msg
	return r.gate(ctx, log, d)
}

// Deliver routes an already constructed message through the validity gate.
func (r *Router[M]) Deliver(ctx context.Context, msg M) (Delivery[M], error) {
	d := Delivery[M]{TraceID: traceID(ctx), Message: msg}
	d.Function, _ = r.registry.Name(msg.FunctionID())
	if d.Function == "" {
		d.Function = strconv.Itoa(int(msg.FunctionID()))
	}
	log := r.logger.With().
		Str("trace_id", d.TraceID).
		Int32("function_id", int32(msg.FunctionID())).
		Str("function", d.Function).
		Logger()
	if err := ctx.Err(); err != nil {
		r.count(d.Function, OutcomeCanceled)
		return d, err
	}
	return r.gate(ctx, log, d)
}

func (r *Router[M]) gate(ctx context.Context, log zerolog.Logger, d Delivery[M]) (Delivery[M], error) {
	if !d.Message.IsValid() {
		d.Issues = rpcbase.Validate(d.Message)
		for _, is := range d.Issues {
			r.metrics.Issues.WithLabelValues(d.Function, is.Code).Inc()
		}
		ev := log.Warn().Int("issues", len(d.Issues))
		if len(d.Issues) > 0 {
			ev = ev.Str("first_path", d.Issues[0].Path).Str("first_code", d.Issues[0].Code)
		}
		if !r.allowInvalid {
			ev.Msg("rejected invalid message")
			r.count(d.Function, OutcomeInvalid)
			return d, fmt.Errorf("%w: %s: %w", ErrInvalidMessage, d.Function, d.Issues)
		}
		ev.Msg("delivering invalid message")
	}

	if err := r.deliver(ContextWithTraceID(ctx, d.TraceID), d.Message); err != nil {
		r.count(d.Function, OutcomeFailed)
		log.Error().Err(err).Msg("handler failed")
		return d, fmt.Errorf("dispatch: deliver %s: %w", d.Function, err)
	}
	r.count(d.Function, OutcomeHandled)
	log.Debug().Msg("delivered")
	return d, nil
}

func (r *Router[M]) count(function, outcome string) {
	r.metrics.Messages.WithLabelValues(r.registry.Kind().String(), function, outcome).Inc()
}

// traceID reuses a trace id already on ctx and mints one otherwise.
func traceID(ctx context.Context) string {
	if id, ok := TraceIDFromContext(ctx); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
