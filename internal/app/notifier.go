package app

import (
	"context"
	"fmt"
	"io"
	"sync"

	"supplydesk/internal/logger"

	"go.uber.org/zap"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Notification struct {
	Level   Level
	Message string
	Err     error
}

// Notifier surfaces outcomes to the user. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type logNotifier struct {
	log *zap.Logger
}

// NewLogNotifier writes notifications to l, or to the global logger when l
// is nil.
func NewLogNotifier(l *zap.Logger) Notifier {
	return &logNotifier{log: l}
}

func (n *logNotifier) Notify(ctx context.Context, note Notification) {
	log := n.log
	if log == nil {
		log = logger.FromCtx(ctx)
	}
	log = log.With(zap.String("layer", "notify"))

	if note.Level == LevelError {
		log.Error(note.Message, zap.Error(note.Err))
		return
	}
	log.Info(note.Message)
}

type writerNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier prints one line per notification, for terminals.
func NewWriterNotifier(w io.Writer) Notifier {
	return &writerNotifier{w: w}
}

func (n *writerNotifier) Notify(_ context.Context, note Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if note.Level == LevelError {
		fmt.Fprintf(n.w, "error: %s\n", note.Message)
		return
	}
	fmt.Fprintln(n.w, note.Message)
}

func notifyError(ctx context.Context, n Notifier, msg string, err error) {
	n.Notify(ctx, Notification{Level: LevelError, Message: msg, Err: err})
}

func notifyInfo(ctx context.Context, n Notifier, msg string) {
	n.Notify(ctx, Notification{Level: LevelInfo, Message: msg})
}
