package internal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// FaultKind classifies a reconstruction fault. Kinds are errors themselves, so
// callers can test a returned error with errors.Is(err, NoEarFound).
type FaultKind int

const (
	// The edges of the sector do not close into loops.
	UnclaimedEdges FaultKind = iota + 1
	// Two loops have the same area, so the outer boundary can't be chosen.
	AmbiguousOuterLoop
	// Splicing a hole would exceed the configured polygon size limit.
	HoleSpliceOverflow
	// No outer vertex was found to bridge a hole to.
	BridgeNotFound
	// Ear clipping stopped making progress.
	NoEarFound
)

var faultKindNames = map[FaultKind]string{
	UnclaimedEdges:     "unclaimed edges",
	AmbiguousOuterLoop: "ambiguous outer loop",
	HoleSpliceOverflow: "hole splice overflow",
	BridgeNotFound:     "bridge not found",
	NoEarFound:         "no ear found",
}

func (k FaultKind) String() string {
	if name, ok := faultKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("fault(%d)", int(k))
}

func (k FaultKind) Error() string {
	return k.String()
}

// Degraded faults still leave a usable mesh behind: a dropped hole renders as
// filled floor, a stuck ear clipper leaves a gap. The others leave the sector
// empty.
func (k FaultKind) Degraded() bool {
	switch k {
	case HoleSpliceOverflow, BridgeNotFound, NoEarFound:
		return true
	}
	return false
}

// ReconstructionFault is a recoverable failure confined to one sector.
type ReconstructionFault struct {
	Kind   FaultKind
	Sector int
	// Index of the hole among the sector's holes, or -1 when the fault is not
	// about a particular hole.
	Hole  int
	Cause error
}

func newFault(kind FaultKind, sector int, format string, args ...interface{}) *ReconstructionFault {
	return &ReconstructionFault{
		Kind:   kind,
		Sector: sector,
		Hole:   -1,
		Cause:  errors.Errorf(format, args...),
	}
}

func (f *ReconstructionFault) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sector %d: %s", f.Sector, f.Kind)
	if f.Hole >= 0 {
		fmt.Fprintf(&b, " (hole %d)", f.Hole)
	}
	if f.Cause != nil {
		fmt.Fprintf(&b, ": %v", f.Cause)
	}
	return b.String()
}

func (f *ReconstructionFault) Unwrap() error {
	return f.Kind
}

// FaultList gathers every fault raised while reconstructing one sector. Several
// holes can be dropped and the ear clipper can still get stuck afterwards.
type FaultList []*ReconstructionFault

func (l FaultList) Error() string {
	messages := make([]string, len(l))
	for i, f := range l {
		messages[i] = f.Error()
	}
	return strings.Join(messages, "; ")
}

func (l FaultList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, f := range l {
		errs[i] = f
	}
	return errs
}

// Err returns nil for an empty list, the fault itself for a single one, and
// the list otherwise.
func (l FaultList) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	}
	return l
}

// Faults flattens an error returned by the pipeline back into its faults.
func Faults(err error) FaultList {
	if err == nil {
		return nil
	}
	var list FaultList
	if errors.As(err, &list) {
		return list
	}
	var fault *ReconstructionFault
	if errors.As(err, &fault) {
		return FaultList{fault}
	}
	return nil
}
