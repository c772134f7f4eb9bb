package acconfig

import (
	"ac_learner/internal/matrix"
)

// Clone is one destination written by CloneFanMode.
type Clone struct {
	OperationMode string
	FanMode       string
}

// CloneFanMode copies the (srcOp, srcFan) subtree to every pair in the
// cross product of dstOps and dstFans. The source is checked before any
// write, so a missing source aborts the whole batch with the matrix
// unchanged.
func (r *Record) CloneFanMode(srcOp, srcFan string, dstOps, dstFans []string) ([]Clone, error) {
	if _, ok := r.Commands.FanMode(srcOp, srcFan); !ok {
		return nil, &matrix.NotLearnedError{Cell: matrix.Cell{OperationMode: srcOp, FanMode: srcFan}}
	}
	var done []Clone
	for _, op := range dstOps {
		for _, fan := range dstFans {
			if err := r.Commands.CopyFanMode(srcOp, srcFan, op, fan); err != nil {
				return done, err
			}
			done = append(done, Clone{OperationMode: op, FanMode: fan})
		}
	}
	return done, nil
}

// FillTemperatures copies the code learned at src to every temperature of
// the record's range that is still unlearned for src's operation, fan and
// swing mode.
func (r *Record) FillTemperatures(src matrix.Cell) ([]string, error) {
	return r.Commands.FillTemperatures(src.OperationMode, src.FanMode, src.SwingMode, src.Temperature, r.Temperatures())
}
