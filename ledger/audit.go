package ledger

import (
	"go-ledger-api/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// audited records a start and an end marker around a mutating operation.
// The end marker is written whether or not the delegate failed, and the
// delegate's error is returned untouched. The audit id pairs the two
// markers of one invocation.
func audited(operation string, fields logrus.Fields, fn func() error) error {
	log := logger.Log.WithFields(fields).WithFields(logrus.Fields{
		"audit_id":  uuid.NewString(),
		"operation": operation,
	})

	log.Info("Operation started")
	err := fn()
	if err != nil {
		log.WithError(err).Info("Operation finished")
		return err
	}
	log.Info("Operation finished")
	return nil
}
