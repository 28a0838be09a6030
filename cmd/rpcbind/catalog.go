package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/reoring/rpcbase"
	"github.com/reoring/rpcbase/dispatch"
	"github.com/reoring/rpcbase/interfaces/testrpc/notification"
	"github.com/reoring/rpcbase/interfaces/testrpc/request"
)

// family erases the message type of one registry so the commands can treat
// requests and notifications alike.
type family struct {
	kind   rpcbase.MessageKind
	ids    func() []rpcbase.FunctionID
	name   func(rpcbase.FunctionID) (string, bool)
	lookup func(string) (rpcbase.FunctionID, bool)
	create func(rpcbase.FunctionID) (rpcbase.Message, error)
	route  func(ctx context.Context, id rpcbase.FunctionID, data []byte, opts dispatch.Options) (rpcbase.Issues, error)
}

func familyOf[M rpcbase.Message](reg *rpcbase.Registry[M], deliver func(M)) family {
	return family{
		kind:   reg.Kind(),
		ids:    reg.IDs,
		name:   reg.Name,
		lookup: reg.Lookup,
		create: func(id rpcbase.FunctionID) (rpcbase.Message, error) { return reg.New(id) },
		route: func(ctx context.Context, id rpcbase.FunctionID, data []byte, opts dispatch.Options) (rpcbase.Issues, error) {
			r := dispatch.NewRouter(reg, func(_ context.Context, m M) error {
				deliver(m)
				return nil
			}, opts)
			d, err := r.Dispatch(ctx, id, data)
			return d.Issues, err
		},
	}
}

// catalog lists the message families of the interface.
func catalog(log zerolog.Logger) []family {
	h := &logHandler{log: log}
	return []family{
		familyOf(request.Registry(), func(r request.Request) { r.HandleWith(h) }),
		familyOf(notification.Registry(), func(n notification.Notification) { n.HandleWith(h) }),
	}
}

type entry struct {
	fam  family
	id   rpcbase.FunctionID
	name string
}

// resolve finds a function by name or numeric id.
func resolve(families []family, arg string) (entry, error) {
	for _, f := range families {
		if id, ok := f.lookup(arg); ok {
			return entry{fam: f, id: id, name: arg}, nil
		}
	}
	if n, err := strconv.ParseInt(arg, 10, 32); err == nil {
		id := rpcbase.FunctionID(n)
		for _, f := range families {
			if name, ok := f.name(id); ok {
				return entry{fam: f, id: id, name: name}, nil
			}
		}
		return entry{}, fmt.Errorf("function %s: %w", arg, &rpcbase.UnknownTypeError{ID: id})
	}
	return entry{}, fmt.Errorf("function %q: %w", arg, rpcbase.ErrUnknownMessageType)
}

func entries(families []family) []entry {
	var out []entry
	for _, f := range families {
		for _, id := range f.ids() {
			name, _ := f.name(id)
			out = append(out, entry{fam: f, id: id, name: name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func routerOptions() dispatch.Options {
	opts := dispatch.Options{
		Logger:              logger,
		AllowInvalid:        cfg.Dispatch.AllowInvalid,
		RejectDuplicateKeys: cfg.Dispatch.RejectDuplicateKeys || strictKeys,
	}
	if metrics != nil {
		opts.Metrics = sharedMetrics()
	}
	return opts
}

var routerMetrics *dispatch.Metrics

func sharedMetrics() *dispatch.Metrics {
	if routerMetrics == nil {
		var reg prometheus.Registerer
		if metrics != nil {
			reg = metrics
		}
		routerMetrics = dispatch.NewMetrics(reg)
	}
	return routerMetrics
}

// logHandler implements every Handler capability of the interface by logging
// the delivered message.
type logHandler struct {
	log zerolog.Logger
}

func (h *logHandler) handled(m rpcbase.Message, name string) {
	h.log.Info().Str("function", name).Int32("function_id", int32(m.FunctionID())).Bool("valid", m.IsValid()).Msg("handled")
}

func (h *logHandler) HandleAddSubMenu(p *request.AddSubMenu) {
	h.handled(p, "AddSubMenu")
}

func (h *logHandler) HandleDiagnosticMessage(p *request.DiagnosticMessage) {
	h.handled(p, "DiagnosticMessage")
}

func (h *logHandler) HandleOnAppInterfaceUnregistered(p *notification.OnAppInterfaceUnregistered) {
	h.handled(p, "OnAppInterfaceUnregistered")
}

func (h *logHandler) HandleOnAudioPassThru(p *notification.OnAudioPassThru) {
	h.handled(p, "OnAudioPassThru")
}
