package bridge

import (
	"github.com/joeycumines/logiface"

	"github.com/kouweizhong/sockets-for-pcl/socketerr"
)

type (
	// Classifier maps the raw error of a failed native handle to the error
	// the Future fails with. See also socketerr.Classifier, the default.
	Classifier interface {
		Classify(err error) error
	}

	// ClassifierFunc implements Classifier.
	ClassifierFunc func(err error) error

	// Option configures a bridged call.
	Option interface {
		applyBridge(*bridgeOptions)
	}

	bridgeOptions struct {
		classifier Classifier
		logger     *logiface.Logger[logiface.Event]
	}

	bridgeOptionImpl struct {
		applyBridgeFunc func(*bridgeOptions)
	}
)

func (x ClassifierFunc) Classify(err error) error { return x(err) }

func (x *bridgeOptionImpl) applyBridge(opts *bridgeOptions) {
	x.applyBridgeFunc(opts)
}

// WithClassifier overrides the error classifier. A nil classifier restores
// the default, the zero socketerr.Classifier.
func WithClassifier(classifier Classifier) Option {
	return &bridgeOptionImpl{func(opts *bridgeOptions) {
		opts.classifier = classifier
	}}
}

// WithLogger enables logging, of completion statuses (trace level) and
// contract violations (critical level). Failures are never logged, only
// returned. Logging is disabled by default.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &bridgeOptionImpl{func(opts *bridgeOptions) {
		opts.logger = logger
	}}
}

func resolveOptions(options []Option) *bridgeOptions {
	opts := &bridgeOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt.applyBridge(opts)
	}
	if opts.classifier == nil {
		opts.classifier = socketerr.Classifier{}
	}
	return opts
}
