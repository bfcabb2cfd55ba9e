package operator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
)

// WriterSource opens a storage transaction. *storage.Storage implements it.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriterSource
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s WriterSource, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		start := time.Now()
		err := o.processItem(item)
		item.response <- ActionItemResponse{err: err}

		entry := o.logger.WithFields(logrus.Fields{
			"action":     item.action.Name(),
			"durationMs": time.Since(start).Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Warn("Operator.Action.Failed")
		} else {
			entry.Debug("Operator.Action.Committed")
		}
	}
}

// processItem runs one action in its own transaction. Action errors roll back.
func (o *Operator) processItem(item ActionItem) error {
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		return err
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		if rbErr := writer.Rollback(); rbErr != nil {
			o.logger.WithError(rbErr).WithField("action", item.action.Name()).Error("Operator.Action.RollbackFailed")
		}
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
