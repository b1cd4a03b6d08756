package observability

import (
	"context"
	"errors"

	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type stopFunc func(context.Context) error

type component struct {
	name string
	stop stopFunc
}

// Runtime is the telemetry a binary started: tracing and log export, the
// continuous profiler and the pprof listener. Disabled parts are skipped.
type Runtime struct {
	logger     *logging.Logger
	components []component
	pprofAddr  string
}

// Start brings up every enabled telemetry component. On error, the parts
// already running are shut down before returning.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	if stop := startUptrace(cfg, logger); stop != nil {
		rt.add("uptrace", stop)
	}

	stop, err := startPyroscope(cfg, logger)
	if err != nil {
		return nil, errors.Join(err, rt.Shutdown(context.Background()))
	}
	if stop != nil {
		rt.add("pyroscope", stop)
	}

	addr, stop, err := startPprof(cfg, logger)
	if err != nil {
		return nil, errors.Join(err, rt.Shutdown(context.Background()))
	}
	if stop != nil {
		rt.pprofAddr = addr
		rt.add("pprof", stop)
	}

	return rt, nil
}

func (r *Runtime) add(name string, stop stopFunc) {
	r.components = append(r.components, component{name: name, stop: stop})
}

// PprofAddr is the bound pprof listener address, empty when pprof is off.
func (r *Runtime) PprofAddr() string {
	return r.pprofAddr
}

// Shutdown stops components in reverse start order. Safe to call twice.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var errs []error
	for i := len(r.components) - 1; i >= 0; i-- {
		c := r.components[i]
		if err := c.stop(ctx); err != nil {
			errs = append(errs, err)
			r.logger.Warn("telemetry component stop failed", "component", c.name, "error", err)
			continue
		}
		r.logger.Info("telemetry component stopped", "component", c.name)
	}
	r.components = nil

	return errors.Join(errs...)
}
