// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
)

// Stage names one step of a run.
type Stage string

const (
	StageLoad   Stage = "load"
	StageIndex  Stage = "index"
	StagePrime  Stage = "prime"
	StageBuild  Stage = "build"
	StagePower  Stage = "power"
	StageVerify Stage = "verify"
)

// ErrPrecision is returned for an unknown Settings.Precision.
var ErrPrecision = errors.New("pipeline: unknown precision")

// StageError ties a failure to the dataset and stage that produced it.
type StageError struct {
	Dataset string
	Stage   Stage
	Err     error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("dataset %q: %s: %v", e.Dataset, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(dataset string, st Stage, err error) error {
	return &StageError{Dataset: dataset, Stage: st, Err: err}
}
