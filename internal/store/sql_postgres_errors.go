// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop whether a failed statement may be
// run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryablePgCodes are the codes a preferences load or upsert can hit
// transiently: a dropped or not yet accepting connection, and a conflicting
// concurrent upsert of the same blob.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionFailure:    {},
	pgerrcode.CannotConnectNow:     {},
	pgerrcode.SerializationFailure: {},
	pgerrcode.DeadlockDetected:     {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for the codes in retryablePgCodes, wrapped or
// not, and [NonRetryable] for everything else.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
