package ftrl

import (
	"errors"
	"fmt"

	"github.com/evilmucedin/SIMDNumber/hwy"
	"github.com/viterin/vek/vek32"
)

// Table is a dense feature table stored as three aligned columns (z, n,
// weight). It implements the batch packing contract of UpdateVector: every
// full group of 8 features is loaded, updated with the vector kernel and
// stored back; the remainder goes through the scalar kernel.
//
// A Table is not safe for concurrent use.
type Table struct {
	size int
	cfg  Config
	vcfg *VectorConfig

	z, n, w *hwy.AlignedBuffer
	grad    *hwy.AlignedBuffer // scratch for packing gradients
}

// NewTable returns a table of size zero-state features.
func NewTable(size int, cfg Config) (*Table, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative table size %d", ErrSizeMismatch, size)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Table{
		size: size,
		cfg:  cfg,
		vcfg: NewVectorConfig(cfg),
		z:    hwy.NewAlignedBuffer(size),
		n:    hwy.NewAlignedBuffer(size),
		w:    hwy.NewAlignedBuffer(size),
		grad: hwy.NewAlignedBuffer(size),
	}, nil
}

// Len returns the number of features.
func (t *Table) Len() int {
	return t.size
}

// Config returns the hyperparameters the table was built with.
func (t *Table) Config() Config {
	return t.cfg
}

// State returns the state of feature i.
func (t *Table) State(i int) FeatureState {
	return FeatureState{
		Z:      t.z.Data()[i],
		N:      t.n.Data()[i],
		Weight: t.w.Data()[i],
	}
}

// SetState overwrites the state of feature i.
func (t *Table) SetState(i int, st FeatureState) {
	t.z.Data()[i] = st.Z
	t.n.Data()[i] = st.N
	t.w.Data()[i] = st.Weight
}

// Weights returns the weight column. The slice aliases the table.
func (t *Table) Weights() []float32 {
	return t.w.Data()[:t.size]
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c, _ := NewTable(t.size, t.cfg)
	copy(c.z.Data(), t.z.Data())
	copy(c.n.Data(), t.n.Data())
	copy(c.w.Data(), t.w.Data())
	return c
}

// Apply applies gradients[i] to feature i for every feature, using the
// vector kernel for full groups of 8 and the scalar kernel for the rest.
//
// A rejected update does not stop the batch. All rejected features are
// returned in a *BatchError whose Err joins the per-group errors, so
// errors.Is(err, ErrLaneValidation) and errors.Is(err, ErrDegenerateResult)
// tell which kernel rejected them.
func (t *Table) Apply(gradients []float32) error {
	if len(gradients) != t.size {
		return fmt.Errorf("%w: %d gradients for %d features", ErrSizeMismatch, len(gradients), t.size)
	}
	copy(t.grad.Data(), gradients)

	var failed []int
	var errs []error
	hwy.ProcessWithTail(t.size,
		func(offset int) {
			g := hwy.Load(t.grad, offset)
			z := hwy.Load(t.z, offset)
			n := hwy.Load(t.n, offset)
			w := hwy.Load(t.w, offset)

			err := UpdateVector(g, &z, &n, &w, t.vcfg)

			hwy.Store(z, t.z, offset)
			hwy.Store(n, t.n, offset)
			hwy.Store(w, t.w, offset)

			var le *LaneError
			if errors.As(err, &le) {
				for _, lane := range le.Lanes.Indices() {
					failed = append(failed, offset+lane)
				}
				errs = append(errs, err)
			}
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				if err := t.applyScalar(i, gradients[i]); err != nil {
					failed = append(failed, i)
					errs = append(errs, err)
				}
			}
		},
	)

	if len(failed) > 0 {
		return &BatchError{Features: failed, Err: errors.Join(errs...)}
	}
	return nil
}

// ApplyScalar is Apply using only the scalar kernel.
func (t *Table) ApplyScalar(gradients []float32) error {
	if len(gradients) != t.size {
		return fmt.Errorf("%w: %d gradients for %d features", ErrSizeMismatch, len(gradients), t.size)
	}

	var failed []int
	var errs []error
	for i, g := range gradients {
		if err := t.applyScalar(i, g); err != nil {
			failed = append(failed, i)
			errs = append(errs, err)
		}
	}
	if len(failed) > 0 {
		return &BatchError{Features: failed, Err: errors.Join(errs...)}
	}
	return nil
}

func (t *Table) applyScalar(i int, g float32) error {
	return UpdateState(g, &t.z.Data()[i], &t.n.Data()[i], &t.w.Data()[i], t.cfg)
}

// WeightSum returns the sum of all weights.
func (t *Table) WeightSum() float32 {
	if t.size == 0 {
		return 0
	}
	return vek32.Sum(t.Weights())
}

// MaxWeightDiff returns max_i |t.weight[i] - o.weight[i]|. Both tables must
// have the same length.
func (t *Table) MaxWeightDiff(o *Table) (float32, error) {
	if t.size != o.size {
		return 0, fmt.Errorf("%w: %d vs %d features", ErrSizeMismatch, t.size, o.size)
	}
	if t.size == 0 {
		return 0, nil
	}
	d := vek32.Sub(t.Weights(), o.Weights())
	vek32.Abs_Inplace(d)
	return vek32.Max(d), nil
}
