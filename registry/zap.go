package registry

import "go.uber.org/zap"

// ZapObserver logs every lifecycle event through a zap logger at debug
// level (released and freed at info). Subscribe it to a Table to get a
// structured trace of ownership activity.
type ZapObserver struct {
	log *zap.Logger
}

// NewZapObserver creates an observer logging to l.
func NewZapObserver(l *zap.Logger) *ZapObserver {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapObserver{log: l}
}

// OnOwnershipEvent implements Observer.
func (o *ZapObserver) OnOwnershipEvent(e Event) {
	fields := []zap.Field{
		zap.Uint64("family", uint64(e.Handle)),
		zap.String("kind", e.Kind),
		zap.Int64("strong", e.Strong),
		zap.Int64("weak", e.Weak),
	}
	switch e.Type {
	case EventReleased, EventFreed:
		o.log.Info(e.Type.String(), fields...)
	default:
		o.log.Debug(e.Type.String(), fields...)
	}
}
